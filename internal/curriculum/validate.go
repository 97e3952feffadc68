package curriculum

import (
	"fmt"
	"strings"
)

// validatePaths performs all structural checks on the given paths.
// Returns a combined error describing all problems found, or nil if valid.
func validatePaths(paths []LearningPath) error {
	var errs []string

	if len(paths) == 0 {
		errs = append(errs, "catalog has no learning paths")
	}

	seen := make(map[PathKey]bool, len(paths))
	for _, p := range paths {
		key := p.Key()
		if key.Language == "" {
			errs = append(errs, "learning path with empty language")
		}
		if !key.Level.Valid() {
			errs = append(errs, fmt.Sprintf("path %s: unknown level %q", key, p.Level))
		}
		if seen[key] {
			errs = append(errs, fmt.Sprintf("duplicate learning path: %s", key))
		}
		seen[key] = true

		errs = append(errs, validatePath(p)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validatePath(p LearningPath) []string {
	var errs []string
	key := p.Key()

	if len(p.Concepts) == 0 {
		return []string{fmt.Sprintf("path %s has no concepts", key)}
	}

	idSet := make(map[string]bool, len(p.Concepts))
	position := make(map[string]int, len(p.Concepts))

	// Check for duplicate IDs
	for i, concept := range p.Concepts {
		if concept.ID == "" {
			errs = append(errs, fmt.Sprintf("path %s: concept at position %d has empty ID", key, i))
		}
		if idSet[concept.ID] {
			errs = append(errs, fmt.Sprintf("path %s: duplicate concept ID: %q", key, concept.ID))
		}
		idSet[concept.ID] = true
		position[concept.ID] = i
	}

	// Check for dangling prerequisites and ordering
	for i, concept := range p.Concepts {
		for _, prereqID := range concept.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("path %s: concept %q references nonexistent prerequisite %q", key, concept.ID, prereqID))
				continue
			}
			if position[prereqID] >= i {
				errs = append(errs, fmt.Sprintf("path %s: concept %q is listed before its prerequisite %q", key, concept.ID, prereqID))
			}
		}
		if i > 0 && concept.Order <= p.Concepts[i-1].Order {
			errs = append(errs, fmt.Sprintf("path %s: concept %q order %d is not after %d", key, concept.ID, concept.Order, p.Concepts[i-1].Order))
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(p.Concepts))
	adjList := make(map[string][]string)
	for _, concept := range p.Concepts {
		inDegree[concept.ID] = len(concept.Prerequisites)
		for _, prereqID := range concept.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], concept.ID)
		}
	}

	var queue []string
	for _, concept := range p.Concepts {
		if inDegree[concept.ID] == 0 {
			queue = append(queue, concept.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(p.Concepts) {
		var cycleNodes []string
		for _, concept := range p.Concepts {
			if inDegree[concept.ID] > 0 {
				cycleNodes = append(cycleNodes, concept.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("path %s: cycle detected involving concepts: %s", key, strings.Join(cycleNodes, ", ")))
	}

	// Check concept settings
	for _, concept := range p.Concepts {
		prefix := fmt.Sprintf("path %s: concept %q", key, concept.ID)
		if concept.EstimatedMins <= 0 {
			errs = append(errs, fmt.Sprintf("%s: EstimatedMins must be > 0, got %d", prefix, concept.EstimatedMins))
		}
		if concept.ExercisesRequired < 0 {
			errs = append(errs, fmt.Sprintf("%s: ExercisesRequired must be >= 0, got %d", prefix, concept.ExercisesRequired))
		}
		if concept.MasteryThreshold <= 0 || concept.MasteryThreshold > 100 {
			errs = append(errs, fmt.Sprintf("%s: MasteryThreshold must be in (0, 100], got %d", prefix, concept.MasteryThreshold))
		}
	}

	// Check graduation requirements fit the path
	req := p.Requirements
	if req.ConceptsCompleted <= 0 || req.ConceptsCompleted > len(p.Concepts) {
		errs = append(errs, fmt.Sprintf("path %s: requirements: ConceptsCompleted must be in [1, %d], got %d", key, len(p.Concepts), req.ConceptsCompleted))
	}
	if req.ExercisesCompleted <= 0 || req.ExercisesCompleted > p.TotalExercises() {
		errs = append(errs, fmt.Sprintf("path %s: requirements: ExercisesCompleted must be in [1, %d], got %d", key, p.TotalExercises(), req.ExercisesCompleted))
	}
	if req.TotalTimeMins <= 0 {
		errs = append(errs, fmt.Sprintf("path %s: requirements: TotalTimeMins must be > 0, got %d", key, req.TotalTimeMins))
	}
	if req.MasteryLevel <= 0 || req.MasteryLevel > 100 {
		errs = append(errs, fmt.Sprintf("path %s: requirements: MasteryLevel must be in (0, 100], got %d", key, req.MasteryLevel))
	}
	if req.MinimumScore < 0 || req.MinimumScore > 100 {
		errs = append(errs, fmt.Sprintf("path %s: requirements: MinimumScore must be in [0, 100], got %d", key, req.MinimumScore))
	}

	return errs
}
