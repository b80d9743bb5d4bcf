package course

import "strings"

// DefaultExcludeCourses is the denylist of known filler courses that carry a
// core-sounding name but are not core major material.
func DefaultExcludeCourses() []string {
	return []string{"电子信息类专业学习概论"}
}

// DefaultCoreKeywords are the subject terms that mark a course as core major
// material: circuits, signals, communications, electronics, digital/analog,
// electromagnetics, probability, linear algebra, analysis, complex
// variables, computer organization, operating systems, embedded systems,
// wireless, and networking.
func DefaultCoreKeywords() []string {
	return []string{
		"电路", "信号", "通信", "电子", "数字", "模拟", "电磁",
		"概率", "随机", "线性代数", "数学分析", "复变",
		"计组", "计算机组织", "操作系统", "linux", "微机系统",
		"无线", "网络",
	}
}

// Classifier partitions official courses into the core major subset based
// purely on course name. The exclusion list short-circuits before any
// keyword match.
type Classifier struct {
	Exclude  []string
	Keywords []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		Exclude:  DefaultExcludeCourses(),
		Keywords: DefaultCoreKeywords(),
	}
}

// IsCoreMajor reports whether a course name matches the core-subject
// keywords. The match is a case-insensitive substring test; an empty name
// is never core.
func (c *Classifier) IsCoreMajor(name string) bool {
	if name == "" {
		return false
	}

	for _, ex := range c.Exclude {
		if strings.Contains(name, ex) {
			return false
		}
	}

	low := strings.ToLower(name)
	for _, k := range c.Keywords {
		if strings.Contains(low, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Core returns the subset of courses classified as core major.
func (c *Classifier) Core(courses []Course) []Course {
	var core []Course
	for _, crs := range courses {
		if c.IsCoreMajor(crs.Name) {
			core = append(core, crs)
		}
	}
	return core
}
