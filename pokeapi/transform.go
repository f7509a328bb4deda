package pokeapi

// Stat keys used by the upstream stats list.
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// ToEntry flattens a detail into the record a grid card shows.
func ToEntry(detail *Detail) Entry {
	return Entry{
		ID:       detail.ID,
		Name:     detail.Name,
		Types:    detail.TypeNames(),
		HP:       detail.Stat(StatHP),
		Attack:   detail.Stat(StatAttack),
		Defense:  detail.Stat(StatDefense),
		ImageURL: ArtworkURL(detail.ID),
	}
}
