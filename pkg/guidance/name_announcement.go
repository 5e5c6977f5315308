package guidance

import "strings"

// SuffixTable holds the street-name suffixes that carry no guidance
// information ("street", "road", cardinal directions, ...). Two names that
// differ only in such suffixes do not need to be announced.
type SuffixTable struct {
	suffixes map[string]struct{}
}

func NewSuffixTable(suffixes []string) *SuffixTable {
	table := &SuffixTable{suffixes: make(map[string]struct{}, len(suffixes))}
	for _, s := range suffixes {
		table.suffixes[strings.ToLower(s)] = struct{}{}
	}
	return table
}

// DefaultSuffixTable covers the common english suffixes plus the cardinal
// directions used on split carriageways.
func DefaultSuffixTable() *SuffixTable {
	return NewSuffixTable([]string{
		"street", "st", "road", "rd", "avenue", "ave", "lane", "ln",
		"drive", "dr", "boulevard", "blvd", "way", "place", "pl",
		"north", "south", "east", "west", "n", "s", "e", "w",
		"nb", "sb", "eb", "wb",
	})
}

func (t *SuffixTable) IsSuffix(word string) bool {
	_, ok := t.suffixes[strings.ToLower(word)]
	return ok
}

// stripSuffixes removes leading and trailing suffix words from a lowercased
// name, keeping at least one word.
func (t *SuffixTable) stripSuffixes(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for len(words) > 1 && t.IsSuffix(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	for len(words) > 1 && t.IsSuffix(words[0]) {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

/*
RequiresNameAnnounced. do the two street names differ enough that a driver
following the first onto the second needs to hear about it? empty names are
never announced against; names that agree after suffix stripping (so "Market
Street" vs "Market St", or the NB/SB halves of a split carriageway) do not
require an announcement either.
*/
func RequiresNameAnnounced(nameA, nameB string, suffixTable *SuffixTable) bool {
	if nameA == "" || nameB == "" {
		return false
	}
	if strings.EqualFold(nameA, nameB) {
		return false
	}
	return suffixTable.stripSuffixes(nameA) != suffixTable.stripSuffixes(nameB)
}
