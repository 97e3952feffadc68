package curriculum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testPath(concepts ...Concept) LearningPath {
	total := 0
	for _, c := range concepts {
		total += c.ExercisesRequired
	}
	return LearningPath{
		Language: "go",
		Level:    LevelBeginner,
		Concepts: concepts,
		Requirements: GraduationRequirements{
			ConceptsCompleted:  len(concepts),
			ExercisesCompleted: total,
			ProjectCompleted:   true,
			MinimumScore:       70,
			TotalTimeMins:      60,
			MasteryLevel:       80,
		},
	}
}

func testConcept(id string, order int, prereqs ...string) Concept {
	return Concept{
		ID:                id,
		Order:             order,
		Prerequisites:     prereqs,
		EstimatedMins:     30,
		ExercisesRequired: 2,
		MasteryThreshold:  80,
	}
}

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []LearningPath
		want  string
	}{
		{
			name:  "empty catalog",
			paths: nil,
			want:  "no learning paths",
		},
		{
			name: "cycle",
			paths: []LearningPath{testPath(
				testConcept("a", 1, "b"),
				testConcept("b", 2, "a"),
			)},
			want: "cycle",
		},
		{
			name: "dangling prerequisite",
			paths: []LearningPath{testPath(
				testConcept("a", 1),
				testConcept("b", 2, "nonexistent"),
			)},
			want: "nonexistent prerequisite",
		},
		{
			name: "duplicate concept",
			paths: []LearningPath{testPath(
				testConcept("a", 1),
				testConcept("a", 2),
			)},
			want: "duplicate concept ID",
		},
		{
			name: "prerequisite listed later",
			paths: []LearningPath{testPath(
				testConcept("a", 1, "b"),
				testConcept("b", 2),
			)},
			want: "listed before its prerequisite",
		},
		{
			name: "order not increasing",
			paths: []LearningPath{testPath(
				testConcept("a", 2),
				testConcept("b", 1),
			)},
			want: "is not after",
		},
		{
			name:  "duplicate path",
			paths: []LearningPath{testPath(testConcept("a", 1)), testPath(testConcept("b", 1))},
			want:  "duplicate learning path",
		},
		{
			name: "unknown level",
			paths: []LearningPath{func() LearningPath {
				p := testPath(testConcept("a", 1))
				p.Level = "expert"
				return p
			}()},
			want: "unknown level",
		},
		{
			name: "requirements exceed path",
			paths: []LearningPath{func() LearningPath {
				p := testPath(testConcept("a", 1))
				p.Requirements.ConceptsCompleted = 3
				return p
			}()},
			want: "ConceptsCompleted must be in [1, 1]",
		},
		{
			name: "bad mastery threshold",
			paths: []LearningPath{func() LearningPath {
				c := testConcept("a", 1)
				c.MasteryThreshold = 120
				return testPath(c)
			}()},
			want: "MasteryThreshold",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePaths(tt.paths)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidatePaths_Valid(t *testing.T) {
	paths := []LearningPath{testPath(
		testConcept("a", 1),
		testConcept("b", 2, "a"),
		testConcept("c", 3, "a", "b"),
	)}
	if err := validatePaths(paths); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "paths.json")
	data := `[{
		"language": "Go",
		"level": "beginner",
		"concepts": [
			{"id": "go-vars", "title": "Variables", "order": 1, "estimated_mins": 30, "exercises_required": 2, "mastery_threshold": 80},
			{"id": "go-funcs", "title": "Functions", "order": 2, "prerequisites": ["go-vars"], "estimated_mins": 40, "exercises_required": 3, "mastery_threshold": 80}
		],
		"requirements": {"concepts_completed": 2, "exercises_completed": 5, "project_completed": true, "minimum_score": 70, "total_time_mins": 70, "mastery_level": 80}
	}]`
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(file)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	p, ok := cat.Path("go", LevelBeginner)
	if !ok {
		t.Fatal("go/beginner path missing")
	}
	if len(p.Concepts) != 2 {
		t.Errorf("got %d concepts, want 2", len(p.Concepts))
	}
	if !cat.CanAccess("go", LevelBeginner, "go-funcs", map[string]bool{"go-vars": true}) {
		t.Error("go-funcs should be accessible after go-vars")
	}
}

func TestLoadFile_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "paths.json")
	data := `[{"language": "go", "level": "beginner", "concepts": []}]`
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(file); err == nil {
		t.Fatal("expected validation error, got nil")
	}
}
