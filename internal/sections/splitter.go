// Package sections partitions resume text into named sections by matching
// header lines against known synonyms.
package sections

import "strings"

// Section identifies a resume section recognized by the splitter.
type Section int

const (
	None Section = iota
	Skills
	Education
	Experience
	Projects
	Keywords

	sectionCount
)

// String returns the lowercase section name.
func (s Section) String() string {
	switch s {
	case Skills:
		return "skills"
	case Education:
		return "education"
	case Experience:
		return "experience"
	case Projects:
		return "projects"
	case Keywords:
		return "keywords"
	default:
		return "none"
	}
}

// headerSynonyms maps exact trimmed, lowercased header lines to sections.
var headerSynonyms = map[string]Section{
	"skills":              Skills,
	"technical skills":    Skills,
	"skill set":           Skills,
	"education":           Education,
	"academic background": Education,
	"experience":          Experience,
	"work experience":     Experience,
	"internships":         Experience,
	"projects":            Projects,
	"personal projects":   Projects,
	"keywords":            Keywords,
}

// Result holds the accumulated raw text of each recognized section.
// Education and Keywords are collected for forward compatibility; nothing
// downstream consumes them yet.
type Result struct {
	Skills     string
	Education  string
	Experience string
	Projects   string
	Keywords   string
}

// Split partitions resume text line by line. A line that exactly matches a
// header synonym switches the current section and is consumed; it never
// appears in any section's text. Other lines are appended raw, with a
// trailing newline, to the current section. Lines seen before the first
// header are discarded. A repeated header re-enters its section and keeps
// appending; sections are never reset.
func Split(resumeText string) Result {
	var accumulated [sectionCount]strings.Builder
	current := None

	for _, line := range strings.Split(resumeText, "\n") {
		if section, ok := headerSynonyms[strings.ToLower(strings.TrimSpace(line))]; ok {
			current = section
			continue
		}
		if current == None {
			continue
		}
		accumulated[current].WriteString(line)
		accumulated[current].WriteByte('\n')
	}

	return Result{
		Skills:     accumulated[Skills].String(),
		Education:  accumulated[Education].String(),
		Experience: accumulated[Experience].String(),
		Projects:   accumulated[Projects].String(),
		Keywords:   accumulated[Keywords].String(),
	}
}
