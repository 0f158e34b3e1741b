package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const descriptionSkills = 3

// descriptionInput is what the profile summary is composed from
type descriptionInput struct {
	Role         string
	Company      string
	Years        int
	TechSkills   []string
	ProjectCount int
}

// Describe composes the one-paragraph summary in the language of the run.
func Describe(in descriptionInput, lang types.Language, lex *lexicon.Lexicon) string {
	top := in.TechSkills
	if len(top) > descriptionSkills {
		top = top[:descriptionSkills]
	}
	focus := skillFocus(top, lex)

	if lang.IsChinese() {
		return describeZH(in, top, focus)
	}
	return describeEN(in, top, focus)
}

func describeZH(in descriptionInput, top []string, focus string) string {
	var b strings.Builder
	b.WriteString(in.Role)
	if in.Company != "" {
		fmt.Fprintf(&b, "，就职于%s", in.Company)
	}
	if in.Years > 0 {
		fmt.Fprintf(&b, "，拥有%d年工作经验", in.Years)
	}
	b.WriteString("。")

	if len(top) > 0 {
		skills := strings.Join(top, "、")
		switch focus {
		case "web3":
			fmt.Fprintf(&b, "专注于%s等Web3技术。", skills)
		case "frontend":
			fmt.Fprintf(&b, "擅长%s等前端技术。", skills)
		default:
			fmt.Fprintf(&b, "熟悉%s等技术。", skills)
		}
	}
	if in.ProjectCount > 0 {
		fmt.Fprintf(&b, "参与过%d个项目。", in.ProjectCount)
	}
	return b.String()
}

func describeEN(in descriptionInput, top []string, focus string) string {
	sentences := make([]string, 0, 3)

	lead := in.Role
	if in.Company != "" {
		lead += " at " + in.Company
	}
	if in.Years > 0 {
		lead += fmt.Sprintf(" with %d %s of experience", in.Years, plural(in.Years, "year", "years"))
	}
	sentences = append(sentences, lead+".")

	if len(top) > 0 {
		skills := strings.Join(top, ", ")
		switch focus {
		case "web3":
			sentences = append(sentences, fmt.Sprintf("Focused on Web3 development with %s.", skills))
		case "frontend":
			sentences = append(sentences, fmt.Sprintf("Skilled in %s for frontend development.", skills))
		default:
			sentences = append(sentences, fmt.Sprintf("Proficient in %s.", skills))
		}
	}
	if in.ProjectCount > 0 {
		sentences = append(sentences, fmt.Sprintf("Contributed to %d %s.", in.ProjectCount, plural(in.ProjectCount, "project", "projects")))
	}
	return strings.Join(sentences, " ")
}

// skillFocus picks the phrasing branch for the top skills: web3, frontend or generic.
func skillFocus(skills []string, lex *lexicon.Lexicon) string {
	text := strings.ToLower(strings.Join(skills, "\n"))
	switch {
	case lexicon.AnyMatch(lex.BucketTerms("web3"), text):
		return "web3"
	case lexicon.AnyMatch(lex.BucketTerms("frontend"), text):
		return "frontend"
	default:
		return ""
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
