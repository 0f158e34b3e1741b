package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	noEducationZH = "未注明教育背景"
	noEducationEN = "Education not specified"
)

// LatestEducation renders the record with the highest graduation year as one sentence.
// Ties keep the earlier record.
func LatestEducation(records []types.Education, lang types.Language) string {
	if len(records) == 0 {
		if lang.IsChinese() {
			return noEducationZH
		}
		return noEducationEN
	}

	latest := records[0]
	for _, rec := range records[1:] {
		if rec.GraduationYear > latest.GraduationYear {
			latest = rec
		}
	}
	if lang.IsChinese() {
		return educationZH(latest)
	}
	return educationEN(latest)
}

func educationZH(e types.Education) string {
	var parts []string
	for _, s := range []string{e.Institution, e.Major, e.Degree} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	sentence := strings.Join(parts, " ")
	if e.GraduationYear > 0 {
		sentence += fmt.Sprintf("，%d年毕业", e.GraduationYear)
	}
	return sentence
}

func educationEN(e types.Education) string {
	sentence := e.Degree
	if e.Major != "" {
		if sentence == "" {
			sentence = e.Major
		} else {
			sentence += " in " + e.Major
		}
	}
	if e.Institution != "" {
		if sentence == "" {
			sentence = e.Institution
		} else {
			sentence += ", " + e.Institution
		}
	}
	if e.GraduationYear > 0 {
		sentence += fmt.Sprintf(" (%d)", e.GraduationYear)
	}
	return sentence
}
