package dircmp

import (
	"sort"
)

// Classification is the outcome bucket assigned to a compared entry
type Classification string

const (
	Identical          Classification = "Identical"
	Different          Classification = "Has differences"
	ComparisonFailed   Classification = "Comparison failed"
	ComparisonTimedOut Classification = "Comparison timed out"

	// MissingOnOneSide entries are never reported
	MissingOnOneSide Classification = "Missing on one side"
)

// Side names one of the two compared roots
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// FileKind is the result of probing a path
type FileKind int

const (
	KindMissing FileKind = iota
	KindFile
	KindOther
)

func (k FileKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindOther:
		return "other"
	default:
		return "missing"
	}
}

// EntrySet is a set of base names taken from one directory listing
type EntrySet map[string]struct{}

func NewEntrySet(names ...string) EntrySet {
	set := make(EntrySet, len(names))
	for _, name := range names {
		set.Add(name)
	}

	return set
}

func (s EntrySet) Add(name string) {
	s[name] = struct{}{}
}

func (s EntrySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s EntrySet) Len() int {
	return len(s)
}

// Sorted returns the names in lexicographic order
func (s EntrySet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// EntryResult is the outcome of classifying one entry
type EntryResult struct {
	Name           string
	Classification Classification
	Artifact       string // Path of the written diff artifact, empty if none
	Err            error  // Per-entry failure, the entry is still reported
}

// ReportGroup maps a classification to the sorted names classified that way
type ReportGroup map[Classification][]string

// Labels returns the group labels in lexicographic order
func (g ReportGroup) Labels() []Classification {
	labels := make([]Classification, 0, len(g))
	for label := range g {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})

	return labels
}

// Report is the result of one comparison run
type Report struct {
	Left    string
	Right   string
	Groups  ReportGroup
	Results []EntryResult // Reported entries only, sorted by name
}

// Failures returns the reported entries that carry a per-entry error
func (r *Report) Failures() []EntryResult {
	var failures []EntryResult
	for _, result := range r.Results {
		if result.Err != nil {
			failures = append(failures, result)
		}
	}

	return failures
}

func newReport(left, right string, results []EntryResult) *Report {
	report := &Report{
		Left:   left,
		Right:  right,
		Groups: make(ReportGroup),
	}

	for _, result := range results {
		if result.Classification == MissingOnOneSide || result.Classification == "" {
			continue
		}

		report.Results = append(report.Results, result)
		report.Groups[result.Classification] = append(report.Groups[result.Classification], result.Name)
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Name < report.Results[j].Name
	})
	for _, names := range report.Groups {
		sort.Strings(names)
	}

	return report
}
