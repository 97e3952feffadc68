package curriculum

import (
	"fmt"
	"sort"
)

// Catalog holds every learning path with precomputed concept indices.
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	paths map[PathKey]*pathIndex
	keys  []PathKey
}

// pathIndex holds one path and its concept graph.
type pathIndex struct {
	path       LearningPath
	byID       map[string]*Concept
	position   map[string]int
	dependents map[string][]string
}

// c is the package-level catalog, set by init() in seed.go.
var c *Catalog

// Default returns the built-in catalog.
func Default() *Catalog {
	return c
}

// NewCatalog validates the given paths and builds a catalog from them.
func NewCatalog(paths []LearningPath) (*Catalog, error) {
	if err := validatePaths(paths); err != nil {
		return nil, err
	}
	return buildCatalog(paths), nil
}

// buildCatalog constructs the indices. Paths must already be valid.
func buildCatalog(paths []LearningPath) *Catalog {
	cat := &Catalog{paths: make(map[PathKey]*pathIndex, len(paths))}

	for _, p := range paths {
		p = p.clone()
		p.Language = NormalizeLanguage(p.Language)

		idx := &pathIndex{
			path:       p,
			byID:       make(map[string]*Concept, len(p.Concepts)),
			position:   make(map[string]int, len(p.Concepts)),
			dependents: make(map[string][]string),
		}
		for i := range idx.path.Concepts {
			concept := &idx.path.Concepts[i]
			idx.byID[concept.ID] = concept
			idx.position[concept.ID] = i
		}
		// Reverse edges, in path order.
		for _, concept := range idx.path.Concepts {
			for _, prereqID := range concept.Prerequisites {
				idx.dependents[prereqID] = append(idx.dependents[prereqID], concept.ID)
			}
		}

		key := p.Key()
		cat.paths[key] = idx
		cat.keys = append(cat.keys, key)
	}

	sort.Slice(cat.keys, func(i, j int) bool {
		if cat.keys[i].Language != cat.keys[j].Language {
			return cat.keys[i].Language < cat.keys[j].Language
		}
		return cat.keys[i].Level.rank() < cat.keys[j].Level.rank()
	})

	return cat
}

func (cat *Catalog) lookup(language string, level Level) (*pathIndex, bool) {
	if cat == nil {
		return nil, false
	}
	idx, ok := cat.paths[PathKey{Language: NormalizeLanguage(language), Level: level}]
	return idx, ok
}

// Path returns the learning path for (language, level).
func (cat *Catalog) Path(language string, level Level) (LearningPath, bool) {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return LearningPath{}, false
	}
	return idx.path.clone(), true
}

// Paths returns all learning paths ordered by language then level.
func (cat *Catalog) Paths() []LearningPath {
	result := make([]LearningPath, 0, len(cat.keys))
	for _, k := range cat.keys {
		result = append(result, cat.paths[k].path.clone())
	}
	return result
}

// Languages returns the distinct languages in the catalog, sorted.
func (cat *Catalog) Languages() []string {
	var result []string
	for _, k := range cat.keys {
		if len(result) == 0 || result[len(result)-1] != k.Language {
			result = append(result, k.Language)
		}
	}
	return result
}

// Levels returns the levels populated for a language in progression order.
func (cat *Catalog) Levels(language string) []Level {
	lang := NormalizeLanguage(language)
	var result []Level
	for _, k := range cat.keys {
		if k.Language == lang {
			result = append(result, k.Level)
		}
	}
	return result
}

// Concept returns a concept by id, or error if the path or concept is unknown.
func (cat *Catalog) Concept(language string, level Level, id string) (Concept, error) {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return Concept{}, fmt.Errorf("learning path not found: %s/%s", NormalizeLanguage(language), level)
	}
	concept, ok := idx.byID[id]
	if !ok {
		return Concept{}, fmt.Errorf("concept not found: %q", id)
	}
	return concept.clone(), nil
}

// Prerequisites returns the direct prerequisite concepts for a concept id.
func (cat *Catalog) Prerequisites(language string, level Level, id string) []Concept {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return nil
	}
	concept, ok := idx.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(concept.Prerequisites))
	for _, prereqID := range concept.Prerequisites {
		if p, ok := idx.byID[prereqID]; ok {
			result = append(result, p.clone())
		}
	}
	return result
}

// Dependents returns concepts that directly depend on the given concept id.
func (cat *Catalog) Dependents(language string, level Level, id string) []Concept {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return nil
	}
	depIDs := idx.dependents[id]
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		if concept, ok := idx.byID[depID]; ok {
			result = append(result, concept.clone())
		}
	}
	return result
}

// CanAccess returns true if all prerequisites of the concept are in the
// completed set.
func (cat *Catalog) CanAccess(language string, level Level, id string, completed map[string]bool) bool {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return false
	}
	return idx.canAccess(id, completed)
}

func (idx *pathIndex) canAccess(id string, completed map[string]bool) bool {
	concept, ok := idx.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range concept.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// AvailableConcepts returns concepts that are unlocked but not yet
// completed, in path order.
func (cat *Catalog) AvailableConcepts(language string, level Level, completed map[string]bool) []Concept {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return nil
	}
	var result []Concept
	for _, concept := range idx.path.Concepts {
		if !completed[concept.ID] && idx.canAccess(concept.ID, completed) {
			result = append(result, concept.clone())
		}
	}
	return result
}

// NextAvailable returns the first concept in path order that is not yet
// completed and whose prerequisites are all completed.
// Returns false when the path is unknown or every concept is completed.
func (cat *Catalog) NextAvailable(language string, level Level, completed map[string]bool) (Concept, bool) {
	idx, ok := cat.lookup(language, level)
	if !ok {
		return Concept{}, false
	}
	if concept, ok := idx.nextAvailable(completed); ok {
		return concept.clone(), true
	}
	return Concept{}, false
}

func (idx *pathIndex) nextAvailable(completed map[string]bool) (*Concept, bool) {
	var firstIncomplete *Concept
	for i := range idx.path.Concepts {
		concept := &idx.path.Concepts[i]
		if completed[concept.ID] {
			continue
		}
		if idx.canAccess(concept.ID, completed) {
			return concept, true
		}
		if firstIncomplete == nil {
			firstIncomplete = concept
		}
	}
	// Path order is topological, so an incomplete concept always has an
	// accessible ancestor. Kept for catalogs built without validation.
	if firstIncomplete != nil {
		return firstIncomplete, true
	}
	return nil, false
}

// AverageConceptMins returns the mean estimated minutes per concept,
// rounded to the nearest minute.
func (cat *Catalog) AverageConceptMins(language string, level Level) int {
	idx, ok := cat.lookup(language, level)
	if !ok || len(idx.path.Concepts) == 0 {
		return 0
	}
	n := len(idx.path.Concepts)
	return (idx.path.TotalMins() + n/2) / n
}

// Validate re-checks the catalog's paths for structural issues.
func (cat *Catalog) Validate() error {
	return validatePaths(cat.Paths())
}

// GetLearningPath returns the built-in learning path for (language, level).
func GetLearningPath(language string, level Level) (LearningPath, bool) {
	return c.Path(language, level)
}

// ConceptPrerequisites returns the direct prerequisites of a concept in the
// built-in catalog.
func ConceptPrerequisites(language string, level Level, id string) []Concept {
	return c.Prerequisites(language, level, id)
}

// CanAccessConcept reports whether a concept's prerequisites are all in the
// completed set, using the built-in catalog.
func CanAccessConcept(language string, level Level, id string, completed map[string]bool) bool {
	return c.CanAccess(language, level, id, completed)
}

// NextAvailableConcept returns the next concept a learner should study in
// the built-in catalog.
func NextAvailableConcept(language string, level Level, completed map[string]bool) (Concept, bool) {
	return c.NextAvailable(language, level, completed)
}

// Paths returns all built-in learning paths.
func Paths() []LearningPath {
	return c.Paths()
}

// Languages returns all languages in the built-in catalog.
func Languages() []string {
	return c.Languages()
}

// Validate checks the built-in catalog for structural issues.
func Validate() error {
	return c.Validate()
}
