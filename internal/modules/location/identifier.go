// README: Region identification; postal-code ranges first, keyword aliases as fallback.
package location

// Resolver maps an address or postal code to a region. Implementations are pure
// functions over static tables.
type Resolver interface {
	Resolve(input string) (Region, bool)
}

// PostalResolver matches an extracted CEP against postal regions in table order.
type PostalResolver struct {
	regions []Region
}

func NewPostalResolver(regions []Region) *PostalResolver {
	return &PostalResolver{regions: regions}
}

func (r *PostalResolver) Resolve(input string) (Region, bool) {
	code, ok := ExtractPostalCode(input)
	if !ok {
		return Region{}, false
	}
	return r.ResolveCode(code)
}

// ResolveCode returns the first region whose rule contains code.
func (r *PostalResolver) ResolveCode(code int) (Region, bool) {
	for _, region := range r.regions {
		if region.matchesPostal(code) {
			return region, true
		}
	}
	return Region{}, false
}

// KeywordResolver matches normalized aliases against the normalized input. The
// first region (in table order) with a matching alias wins.
type KeywordResolver struct {
	regions []Region
}

func NewKeywordResolver(regions []Region) *KeywordResolver {
	normalized := make([]Region, len(regions))
	for i, region := range regions {
		aliases := make([]string, 0, len(region.Aliases))
		for _, a := range region.Aliases {
			if n := NormalizeAddress(a); n != "" {
				aliases = append(aliases, n)
			}
		}
		region.Aliases = aliases
		normalized[i] = region
	}
	return &KeywordResolver{regions: normalized}
}

func (r *KeywordResolver) Resolve(input string) (Region, bool) {
	text := NormalizeAddress(input)
	if text == "" {
		return Region{}, false
	}
	for _, region := range r.regions {
		for _, alias := range region.Aliases {
			if containsPhrase(text, alias) {
				return region, true
			}
		}
	}
	return Region{}, false
}

// Identifier runs its resolvers in order and returns the first hit.
type Identifier struct {
	Postal  *PostalResolver
	Keyword *KeywordResolver
	chain   []Resolver
}

// NewIdentifier builds an identifier over the given tables.
func NewIdentifier(postal, keyword []Region) *Identifier {
	p := NewPostalResolver(postal)
	k := NewKeywordResolver(keyword)
	return &Identifier{Postal: p, Keyword: k, chain: []Resolver{p, k}}
}

// DefaultIdentifier uses the built-in São Paulo tables.
func DefaultIdentifier() *Identifier {
	return NewIdentifier(PostalRegions, KeywordRegions)
}

// Identify returns the region for addressOrPostalCode, or false when neither a
// postal rule nor a keyword matches. It never fails otherwise.
func (i *Identifier) Identify(addressOrPostalCode string) (Region, bool) {
	for _, r := range i.chain {
		if region, ok := r.Resolve(addressOrPostalCode); ok {
			return region, true
		}
	}
	return Region{}, false
}
