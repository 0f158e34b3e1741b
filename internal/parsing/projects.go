package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	maxSectionProjects    = 9
	minProjectLineRunes   = 10
	maxProjectNameRunes   = 30
	projectTechLookahead  = 5
	headingDescLookahead  = 8
	minHeadingProjectName = 5
	maxHeadingProjectName = 49
)

var (
	projectSectionPattern = regexp.MustCompile(`^(?:#{1,6}\s*)?(?:项目经历|项目经验|项目介绍|主要项目|项目)\s*[:：]?\s*$`)
	projectHeadingPattern = regexp.MustCompile(`^###\s+(.+?)\s*$`)
	projectNameStop       = "，,：:。（("
)

// ExtractProjects finds project stubs under a Chinese project section and under
// "### " headings. When neither yields anything, known project names are matched literally.
func (p *Parser) ExtractProjects(text string) []types.Project {
	lines := splitLines(text)
	projects := []types.Project{}
	seen := make(map[string]bool)

	add := func(proj types.Project) {
		if proj.Name == "" || seen[proj.Name] {
			return
		}
		seen[proj.Name] = true
		projects = append(projects, proj)
	}

	for _, proj := range p.sectionProjects(lines) {
		add(proj)
	}
	for _, proj := range p.headingProjects(lines) {
		add(proj)
	}
	if len(projects) > 0 {
		return projects
	}

	for _, literal := range p.lex.ProjectLiterals {
		if strings.Contains(text, literal) {
			add(types.Project{Name: literal, Technologies: []string{}})
		}
	}
	return projects
}

func (p *Parser) sectionProjects(lines []string) []types.Project {
	var projects []types.Project
	for i, line := range lines {
		if !projectSectionPattern.MatchString(strings.TrimSpace(line)) {
			continue
		}
		count := 0
		for j := i + 1; j < len(lines) && count < maxSectionProjects; j++ {
			stub := trimBullet(lines[j])
			if isMarkdownHeading(stub) {
				break
			}
			if runeLen(stub) < minProjectLineRunes {
				continue
			}
			count++
			end := min(len(lines), j+projectTechLookahead)
			projects = append(projects, types.Project{
				Name:         projectName(stub),
				Description:  stub,
				Technologies: p.technologies(strings.Join(lines[j:end], "\n")),
			})
		}
	}
	return projects
}

func (p *Parser) headingProjects(lines []string) []types.Project {
	var projects []types.Project
	for i, line := range lines {
		m := projectHeadingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := m[1]
		if n := runeLen(name); n < minHeadingProjectName || n > maxHeadingProjectName {
			continue
		}
		if projectSectionPattern.MatchString(name) {
			continue
		}

		end := min(len(lines), i+1+headingDescLookahead)
		following := lines[i+1 : end]
		projects = append(projects, types.Project{
			Name:         name,
			Description:  firstContentLine(following),
			Technologies: p.technologies(strings.Join(following, "\n")),
		})
	}
	return projects
}

// projectName is the stub text up to the first clause separator.
func projectName(stub string) string {
	if i := strings.IndexAny(stub, projectNameStop); i >= 0 {
		stub = stub[:i]
	}
	return truncateRunes(strings.TrimSpace(stub), maxProjectNameRunes)
}

func firstContentLine(lines []string) string {
	for _, line := range lines {
		line = trimBullet(line)
		if line != "" && !isMarkdownHeading(line) {
			return line
		}
	}
	return ""
}

func (p *Parser) technologies(text string) []string {
	techs := NormalizeSkills(lexicon.Matched(p.lex.TechMatchers(), text))
	if techs == nil {
		return []string{}
	}
	return techs
}
