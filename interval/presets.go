package interval

var (
	PerfectUnison   = mustNew(0, Perfect)
	MinorSecond     = mustNew(1, Minor)
	MajorSecond     = mustNew(1, Major)
	MinorThird      = mustNew(2, Minor)
	MajorThird      = mustNew(2, Major)
	PerfectFourth   = mustNew(3, Perfect)
	AugmentedFourth = mustNew(3, Augmented)
	DiminishedFifth = mustNew(4, Diminished)
	PerfectFifth    = mustNew(4, Perfect)
	MinorSixth      = mustNew(5, Minor)
	MajorSixth      = mustNew(5, Major)
	MinorSeventh    = mustNew(6, Minor)
	MajorSeventh    = mustNew(6, Major)
	PerfectOctave   = mustNew(7, Perfect)
)

// Simple lists the named intervals within an octave, smallest first.
var Simple = []Interval{
	PerfectUnison,
	MinorSecond,
	MajorSecond,
	MinorThird,
	MajorThird,
	PerfectFourth,
	AugmentedFourth,
	DiminishedFifth,
	PerfectFifth,
	MinorSixth,
	MajorSixth,
	MinorSeventh,
	MajorSeventh,
	PerfectOctave,
}

var byShortName = func() map[string]Interval {
	m := make(map[string]Interval, len(Simple))
	for _, i := range Simple {
		m[i.String()] = i
	}
	return m
}()

// ByShortName finds a named interval by notation such as "m3" or "P5".
func ByShortName(name string) (Interval, bool) {
	i, ok := byShortName[name]
	return i, ok
}
