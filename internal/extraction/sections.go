package extraction

import "strings"

// Section keys produced by ParseSections. Lines that appear before any
// recognized heading accumulate under SectionSummary.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
)

// headingAliases maps lowercased resume headings to canonical section keys.
var headingAliases = map[string]string{
	"summary":                 SectionSummary,
	"objective":               SectionSummary,
	"about":                   SectionSummary,
	"about me":                SectionSummary,
	"profile":                 SectionSummary,
	"skills":                  SectionSkills,
	"technical skills":        SectionSkills,
	"key skills":              SectionSkills,
	"core competencies":       SectionSkills,
	"technologies":            SectionSkills,
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"professional experience": SectionExperience,
	"employment history":      SectionExperience,
	"internships":             SectionExperience,
	"education":               SectionEducation,
	"academic background":     SectionEducation,
	"qualifications":          SectionEducation,
	"projects":                SectionProjects,
	"personal projects":       SectionProjects,
	"academic projects":       SectionProjects,
	"certifications":          SectionCertifications,
	"certificates":            SectionCertifications,
	"licenses":                SectionCertifications,
	"achievements":            SectionAchievements,
	"awards":                  SectionAchievements,
	"honors":                  SectionAchievements,
}

// Document is the structured representation of a resume's raw text, grouped
// into canonical sections. It is consumed only by the skill matcher.
type Document struct {
	Sections map[string][]string
}

// Text returns all lines of a section joined with newlines.
func (d *Document) Text(section string) string {
	return strings.Join(d.Sections[section], "\n")
}

// FullText returns every line of the document regardless of section.
func (d *Document) FullText() string {
	var sb strings.Builder
	for _, lines := range d.Sections {
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ParseSections splits raw resume text into a Document keyed by canonical
// section. A line is treated as a heading when, stripped of trailing colons
// and surrounding whitespace, it matches a known alias.
func ParseSections(text string) *Document {
	doc := &Document{Sections: make(map[string][]string)}

	current := SectionSummary
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if section, ok := matchHeading(line); ok {
			current = section
			continue
		}

		doc.Sections[current] = append(doc.Sections[current], line)
	}

	return doc
}

// matchHeading reports whether a line is a recognized section heading.
func matchHeading(line string) (string, bool) {
	normalized := strings.ToLower(strings.TrimRight(line, ": "))
	normalized = strings.TrimSpace(normalized)
	section, ok := headingAliases[normalized]
	return section, ok
}
