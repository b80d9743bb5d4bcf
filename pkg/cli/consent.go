package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const disclaimer = `========================
DISCLAIMER
========================

This tool is for educational and personal use only.

1. It provides no way to bypass authentication, security mechanisms, or
   access control. You must obtain the grade data yourself, lawfully, from
   a system you are authorized to use, and it must be your own data.
2. You are solely responsible for complying with your institution's
   policies and applicable laws; any consequences of misuse are yours.
3. This project is not affiliated with or endorsed by any university or
   administrative system.
4. The software is provided AS IS, without warranty of any kind. Computed
   results (averages, GPA) are for reference only and may not match any
   official evaluation standard.
`

// confirmTerms prints the disclaimer and waits for the user to accept it.
// It returns false when the user declines.
func confirmTerms() (bool, error) {
	fmt.Print(disclaimer + "\n")
	fmt.Print("Accept the terms and continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}

	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println("Aborted.")
		return false, nil
	}
	return true, nil
}
