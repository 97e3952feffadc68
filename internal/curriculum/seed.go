package curriculum

func init() {
	if err := validatePaths(seedPaths); err != nil {
		panic(err)
	}
	c = buildCatalog(seedPaths)
}

var seedPaths = []LearningPath{
	// JavaScript
	{
		Language: "javascript",
		Level:    LevelBeginner,
		Concepts: []Concept{
			{
				ID:                "js-variables",
				Title:             "Variables and Data Types",
				Description:       "Declare values with let and const and work with strings, numbers, booleans, null and undefined.",
				Order:             1,
				EstimatedMins:     40,
				ExercisesRequired: 3,
				MasteryThreshold:  75,
				Tags:              []string{"basics", "syntax"},
			},
			{
				ID:                "js-operators",
				Title:             "Operators and Expressions",
				Description:       "Arithmetic, comparison and logical operators, strict equality and type coercion.",
				Order:             2,
				Prerequisites:     []string{"js-variables"},
				EstimatedMins:     35,
				ExercisesRequired: 3,
				MasteryThreshold:  75,
				Tags:              []string{"basics", "syntax"},
			},
			{
				ID:                "js-conditionals",
				Title:             "Conditionals",
				Description:       "Branch with if, else and switch; truthy and falsy values.",
				Order:             3,
				Prerequisites:     []string{"js-operators"},
				EstimatedMins:     45,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"control-flow"},
			},
			{
				ID:                "js-loops",
				Title:             "Loops",
				Description:       "Repeat work with for, while and for...of, and exit early with break and continue.",
				Order:             4,
				Prerequisites:     []string{"js-conditionals"},
				EstimatedMins:     50,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"control-flow"},
			},
			{
				ID:                "js-functions",
				Title:             "Functions",
				Description:       "Function declarations, arrow functions, parameters, default values and return values.",
				Order:             5,
				Prerequisites:     []string{"js-conditionals"},
				EstimatedMins:     55,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"functions"},
			},
			{
				ID:                "js-arrays-objects",
				Title:             "Arrays and Objects",
				Description:       "Store collections in arrays, model records with objects, and iterate over both.",
				Order:             6,
				Prerequisites:     []string{"js-loops", "js-functions"},
				EstimatedMins:     60,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"data-structures"},
			},
		},
		Requirements: GraduationRequirements{
			ConceptsCompleted:  6,
			ExercisesCompleted: 19,
			ProjectCompleted:   true,
			MinimumScore:       70,
			TotalTimeMins:      285,
			MasteryLevel:       80,
		},
		EstimatedDuration: "2-3 weeks",
		Difficulty:        "Beginner-friendly",
	},
	{
		Language: "javascript",
		Level:    LevelIntermediate,
		Concepts: []Concept{
			{
				ID:                "js-scope-closures",
				Title:             "Scope and Closures",
				Description:       "Block and function scope, hoisting, and functions that capture their environment.",
				Order:             1,
				EstimatedMins:     50,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"functions", "scope"},
			},
			{
				ID:                "js-higher-order",
				Title:             "Higher-Order Functions",
				Description:       "map, filter, reduce and writing functions that accept or return functions.",
				Order:             2,
				Prerequisites:     []string{"js-scope-closures"},
				EstimatedMins:     55,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"functions", "functional"},
			},
			{
				ID:                "js-dom",
				Title:             "DOM Manipulation",
				Description:       "Query, create and update page elements through the Document Object Model.",
				Order:             3,
				EstimatedMins:     45,
				ExercisesRequired: 3,
				MasteryThreshold:  75,
				Tags:              []string{"browser"},
			},
			{
				ID:                "js-events",
				Title:             "Events",
				Description:       "Listen for user input, understand bubbling and delegation.",
				Order:             4,
				Prerequisites:     []string{"js-dom", "js-higher-order"},
				EstimatedMins:     50,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"browser"},
			},
			{
				ID:                "js-promises",
				Title:             "Promises",
				Description:       "Represent future values, chain then and catch, and combine work with Promise.all.",
				Order:             5,
				Prerequisites:     []string{"js-higher-order"},
				EstimatedMins:     60,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"async"},
			},
			{
				ID:                "js-async-await",
				Title:             "Async and Await",
				Description:       "Write asynchronous code sequentially and handle failures with try and catch.",
				Order:             6,
				Prerequisites:     []string{"js-promises"},
				EstimatedMins:     60,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"async"},
			},
		},
		Requirements: GraduationRequirements{
			ConceptsCompleted:  6,
			ExercisesCompleted: 23,
			ProjectCompleted:   true,
			MinimumScore:       75,
			TotalTimeMins:      320,
			MasteryLevel:       80,
		},
		EstimatedDuration: "3-4 weeks",
		Difficulty:        "Moderate",
	},
	{
		Language: "javascript",
		Level:    LevelAdvanced,
		Concepts: []Concept{
			{
				ID:                "js-prototypes",
				Title:             "Prototypes and Inheritance",
				Description:       "The prototype chain, Object.create and how property lookup works.",
				Order:             1,
				EstimatedMins:     60,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"objects"},
			},
			{
				ID:                "js-classes",
				Title:             "Classes",
				Description:       "Class syntax, private fields, static members and extending built-ins.",
				Order:             2,
				Prerequisites:     []string{"js-prototypes"},
				EstimatedMins:     55,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"objects"},
			},
			{
				ID:                "js-generators",
				Title:             "Iterators and Generators",
				Description:       "The iteration protocol, generator functions and lazy sequences.",
				Order:             3,
				EstimatedMins:     60,
				ExercisesRequired: 3,
				MasteryThreshold:  85,
				Tags:              []string{"functions"},
			},
			{
				ID:                "js-performance",
				Title:             "Performance and Memory",
				Description:       "Profiling, avoiding leaks, debouncing and the event loop in depth.",
				Order:             4,
				Prerequisites:     []string{"js-classes"},
				EstimatedMins:     70,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"runtime"},
			},
			{
				ID:                "js-testing",
				Title:             "Testing",
				Description:       "Unit tests, mocks and test-driven design for JavaScript modules.",
				Order:             5,
				Prerequisites:     []string{"js-classes"},
				EstimatedMins:     65,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"quality"},
			},
			{
				ID:                "js-design-patterns",
				Title:             "Design Patterns",
				Description:       "Module, observer, factory and strategy patterns in idiomatic JavaScript.",
				Order:             6,
				Prerequisites:     []string{"js-classes", "js-generators"},
				EstimatedMins:     75,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"architecture"},
			},
		},
		Requirements: GraduationRequirements{
			ConceptsCompleted:  6,
			ExercisesCompleted: 23,
			ProjectCompleted:   true,
			MinimumScore:       80,
			TotalTimeMins:      385,
			MasteryLevel:       85,
		},
		EstimatedDuration: "4-6 weeks",
		Difficulty:        "Challenging",
	},

	// Python
	{
		Language: "python",
		Level:    LevelBeginner,
		Concepts: []Concept{
			{
				ID:                "py-variables",
				Title:             "Variables and Types",
				Description:       "Names, assignment, and the int, float, str and bool types.",
				Order:             1,
				EstimatedMins:     35,
				ExercisesRequired: 3,
				MasteryThreshold:  75,
				Tags:              []string{"basics", "syntax"},
			},
			{
				ID:                "py-strings",
				Title:             "Working with Strings",
				Description:       "Slicing, f-strings and common string methods.",
				Order:             2,
				Prerequisites:     []string{"py-variables"},
				EstimatedMins:     40,
				ExercisesRequired: 3,
				MasteryThreshold:  75,
				Tags:              []string{"basics"},
			},
			{
				ID:                "py-conditionals",
				Title:             "Conditionals",
				Description:       "if, elif and else, comparison chains and boolean logic.",
				Order:             3,
				Prerequisites:     []string{"py-variables"},
				EstimatedMins:     40,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"control-flow"},
			},
			{
				ID:                "py-loops",
				Title:             "Loops",
				Description:       "for over iterables, range, while, and loop else clauses.",
				Order:             4,
				Prerequisites:     []string{"py-conditionals"},
				EstimatedMins:     45,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"control-flow"},
			},
			{
				ID:                "py-functions",
				Title:             "Functions",
				Description:       "def, positional and keyword arguments, defaults and return values.",
				Order:             5,
				Prerequisites:     []string{"py-conditionals"},
				EstimatedMins:     50,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"functions"},
			},
			{
				ID:                "py-lists-dicts",
				Title:             "Lists and Dictionaries",
				Description:       "Build, index and iterate lists and dictionaries.",
				Order:             6,
				Prerequisites:     []string{"py-loops"},
				EstimatedMins:     55,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"data-structures"},
			},
		},
		Requirements: GraduationRequirements{
			ConceptsCompleted:  6,
			ExercisesCompleted: 20,
			ProjectCompleted:   true,
			MinimumScore:       70,
			TotalTimeMins:      265,
			MasteryLevel:       80,
		},
		EstimatedDuration: "2-3 weeks",
		Difficulty:        "Beginner-friendly",
	},
	{
		Language: "python",
		Level:    LevelIntermediate,
		Concepts: []Concept{
			{
				ID:                "py-comprehensions",
				Title:             "Comprehensions",
				Description:       "List, dict and set comprehensions and generator expressions.",
				Order:             1,
				EstimatedMins:     45,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"idioms"},
			},
			{
				ID:                "py-modules",
				Title:             "Modules and Imports",
				Description:       "Organize code into modules and packages and use the standard library.",
				Order:             2,
				EstimatedMins:     40,
				ExercisesRequired: 3,
				MasteryThreshold:  75,
				Tags:              []string{"structure"},
			},
			{
				ID:                "py-file-io",
				Title:             "File I/O",
				Description:       "Read and write text and CSV files with pathlib and open.",
				Order:             3,
				Prerequisites:     []string{"py-modules"},
				EstimatedMins:     45,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"io"},
			},
			{
				ID:                "py-exceptions",
				Title:             "Exceptions",
				Description:       "try, except, finally, raising errors and custom exception types.",
				Order:             4,
				Prerequisites:     []string{"py-file-io"},
				EstimatedMins:     45,
				ExercisesRequired: 3,
				MasteryThreshold:  80,
				Tags:              []string{"errors"},
			},
			{
				ID:                "py-classes",
				Title:             "Classes and Objects",
				Description:       "Define classes, methods, properties and dunder methods.",
				Order:             5,
				EstimatedMins:     60,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"objects"},
			},
			{
				ID:                "py-decorators",
				Title:             "Decorators",
				Description:       "Wrap functions and methods, functools.wraps and parameterized decorators.",
				Order:             6,
				Prerequisites:     []string{"py-comprehensions", "py-classes"},
				EstimatedMins:     55,
				ExercisesRequired: 4,
				MasteryThreshold:  80,
				Tags:              []string{"functions", "idioms"},
			},
		},
		Requirements: GraduationRequirements{
			ConceptsCompleted:  6,
			ExercisesCompleted: 21,
			ProjectCompleted:   true,
			MinimumScore:       75,
			TotalTimeMins:      290,
			MasteryLevel:       80,
		},
		EstimatedDuration: "3-4 weeks",
		Difficulty:        "Moderate",
	},
	{
		Language: "python",
		Level:    LevelAdvanced,
		Concepts: []Concept{
			{
				ID:                "py-iterators-generators",
				Title:             "Iterators and Generators",
				Description:       "The iterator protocol, yield, and lazy pipelines.",
				Order:             1,
				EstimatedMins:     55,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"idioms"},
			},
			{
				ID:                "py-context-managers",
				Title:             "Context Managers",
				Description:       "with statements, __enter__ and __exit__, and contextlib.",
				Order:             2,
				Prerequisites:     []string{"py-iterators-generators"},
				EstimatedMins:     50,
				ExercisesRequired: 3,
				MasteryThreshold:  85,
				Tags:              []string{"resources"},
			},
			{
				ID:                "py-concurrency",
				Title:             "Concurrency",
				Description:       "Threads, processes and asyncio, and when to use each.",
				Order:             3,
				Prerequisites:     []string{"py-iterators-generators"},
				EstimatedMins:     70,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"async", "runtime"},
			},
			{
				ID:                "py-typing",
				Title:             "Type Hints",
				Description:       "Annotations, generics, protocols and static checking with mypy.",
				Order:             4,
				EstimatedMins:     45,
				ExercisesRequired: 3,
				MasteryThreshold:  85,
				Tags:              []string{"quality"},
			},
			{
				ID:                "py-testing",
				Title:             "Testing with pytest",
				Description:       "Fixtures, parametrized tests and mocking.",
				Order:             5,
				Prerequisites:     []string{"py-typing"},
				EstimatedMins:     60,
				ExercisesRequired: 4,
				MasteryThreshold:  85,
				Tags:              []string{"quality"},
			},
			{
				ID:                "py-packaging",
				Title:             "Packaging and Distribution",
				Description:       "pyproject.toml, virtual environments and publishing packages.",
				Order:             6,
				Prerequisites:     []string{"py-testing", "py-context-managers"},
				EstimatedMins:     50,
				ExercisesRequired: 3,
				MasteryThreshold:  85,
				Tags:              []string{"tooling"},
			},
		},
		Requirements: GraduationRequirements{
			ConceptsCompleted:  6,
			ExercisesCompleted: 21,
			ProjectCompleted:   true,
			MinimumScore:       80,
			TotalTimeMins:      330,
			MasteryLevel:       85,
		},
		EstimatedDuration: "4-6 weeks",
		Difficulty:        "Challenging",
	},
}
