package interval

type simple struct {
	staff   int
	quality Quality
}

// The perfect fourth is consonant or dissonant depending on context, so it is
// left out of every set. Compound intervals are not classified.
var (
	perfectConsonant = map[simple]bool{
		{0, Perfect}: true,
		{7, Perfect}: true,
		{4, Perfect}: true,
	}
	imperfectConsonant = map[simple]bool{
		{2, Minor}: true,
		{2, Major}: true,
		{5, Minor}: true,
		{5, Major}: true,
	}
	dissonant = map[simple]bool{
		{1, Minor}:      true,
		{1, Major}:      true,
		{6, Minor}:      true,
		{6, Major}:      true,
		{4, Diminished}: true,
		{3, Augmented}:  true,
	}
)

func (i Interval) key() simple {
	return simple{i.staff, i.quality}
}

func (i Interval) IsPerfectConsonant() bool {
	return perfectConsonant[i.key()]
}

func (i Interval) IsImperfectConsonant() bool {
	return imperfectConsonant[i.key()]
}

func (i Interval) IsConsonant() bool {
	return i.IsPerfectConsonant() || i.IsImperfectConsonant()
}

func (i Interval) IsDissonant() bool {
	return dissonant[i.key()]
}

// Consonance names the class i falls in, or "unclassified".
func (i Interval) Consonance() string {
	switch {
	case i.IsPerfectConsonant():
		return "perfect consonance"
	case i.IsImperfectConsonant():
		return "imperfect consonance"
	case i.IsDissonant():
		return "dissonance"
	}
	return "unclassified"
}
