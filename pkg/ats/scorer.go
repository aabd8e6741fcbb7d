package ats

import (
	"strings"
	"unicode"
)

// Result holds the outcome of matching a resume against a job description.
// All scores are bounded to [0,100]; keyword and suggestion lists are
// ordered and deduplicated.
type Result struct {
	ScoreOverall    int
	ScoreHardSkills int
	ScoreSoftSkills int
	ScoreFormat     int
	MissingKeywords []string
	Suggestions     []string
}

// Scorer is the pluggable scoring strategy. Implementations must be
// deterministic: identical inputs yield identical results.
type Scorer interface {
	Score(resumeText, jobDescription string) Result
}

// KeywordScorer scores a resume by keyword coverage of the job description
// plus simple structural signals. It keeps no state and performs no I/O.
type KeywordScorer struct{}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "will": true, "have": true, "has": true,
	"this": true, "that": true, "from": true, "your": true, "who": true,
	"can": true, "all": true, "must": true, "should": true, "into": true,
	"they": true, "their": true, "them": true, "was": true, "were": true,
	"not": true, "but": true, "any": true, "its": true, "also": true,
	"looking": true, "experienced": true, "experience": true, "years": true,
	"work": true, "working": true, "team": true, "role": true, "job": true,
	"candidate": true, "required": true, "requirements": true, "strong": true,
	"knowledge": true, "skills": true, "ability": true, "developer": true,
	"engineer": true, "plus": true, "good": true, "etc": true,
}

var softSkillWords = map[string]bool{
	"communication": true, "leadership": true, "teamwork": true,
	"collaboration": true, "mentoring": true, "ownership": true,
	"problem-solving": true, "adaptability": true, "initiative": true,
	"presentation": true, "organized": true, "proactive": true,
}

var sectionHeaders = []string{"summary", "skills", "experience", "education", "projects", "achievements"}

func (s *KeywordScorer) Score(resumeText, jobDescription string) Result {
	resumeTokens := tokenSet(resumeText)
	jdKeywords := extractKeywords(jobDescription)

	var missing []string
	hardTotal, hardMatched := 0, 0
	softTotal, softMatched := 0, 0

	for _, kw := range jdKeywords {
		soft := softSkillWords[kw]
		if soft {
			softTotal++
		} else {
			hardTotal++
		}

		if resumeTokens[kw] {
			if soft {
				softMatched++
			} else {
				hardMatched++
			}
		} else {
			missing = append(missing, kw)
		}
	}

	hardScore := ratio(hardMatched, hardTotal)
	softScore := ratio(softMatched, softTotal)
	formatScore, formatSuggestions := scoreFormat(resumeText)

	overall := (hardScore*5 + softScore*2 + formatScore*3) / 10

	suggestions := buildSuggestions(hardScore, softScore, missing)
	suggestions = append(suggestions, formatSuggestions...)

	return Result{
		ScoreOverall:    clamp(overall),
		ScoreHardSkills: clamp(hardScore),
		ScoreSoftSkills: clamp(softScore),
		ScoreFormat:     clamp(formatScore),
		MissingKeywords: missing,
		Suggestions:     suggestions,
	}
}

// extractKeywords returns job description keywords in first-occurrence
// order, lowercased and deduplicated, with stopwords and short tokens
// dropped.
func extractKeywords(text string) []string {
	seen := make(map[string]bool)
	var keywords []string

	for _, tok := range tokenize(text) {
		if len(tok) < 3 || stopwords[tok] || seen[tok] || isNumeric(tok) {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}

	return keywords
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenize(text) {
		set[tok] = true
	}
	return set
}

// tokenize lowercases and splits on anything that is not a letter, digit,
// or a symbol that appears inside tech names ("c++", "c#", "node.js").
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#', '.', '-':
			return false
		}
		return true
	})
}

func isNumeric(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

func scoreFormat(resumeText string) (int, []string) {
	lower := strings.ToLower(resumeText)
	score := 0
	var suggestions []string

	present := 0
	for _, header := range sectionHeaders {
		if strings.Contains(lower, header) {
			present++
		}
	}
	score += present * 10
	if present < 4 {
		suggestions = append(suggestions, "Add standard sections: Summary, Skills, Experience, Education")
	}

	bullets := strings.Count(resumeText, "\n-") + strings.Count(resumeText, "\n•") + strings.Count(resumeText, "\n*")
	if bullets >= 3 {
		score += 20
	} else {
		suggestions = append(suggestions, "Use bullet points to describe experience and projects")
	}

	words := len(strings.Fields(resumeText))
	if words >= 120 && words <= 900 {
		score += 20
	} else if words < 120 {
		suggestions = append(suggestions, "Resume is too short; expand on projects and achievements")
	} else {
		suggestions = append(suggestions, "Resume is too long; trim to the most relevant content")
	}

	return score, suggestions
}

func buildSuggestions(hardScore, softScore int, missing []string) []string {
	var suggestions []string

	if len(missing) > 0 {
		top := missing
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions, "Add missing keywords: "+strings.Join(top, ", "))
	}
	if hardScore < 60 {
		suggestions = append(suggestions, "Highlight technical skills that match the job description")
	}
	if softScore < 50 {
		suggestions = append(suggestions, "Mention soft skills like communication and teamwork with examples")
	}

	return suggestions
}

func ratio(matched, total int) int {
	if total == 0 {
		return 100
	}
	return matched * 100 / total
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
