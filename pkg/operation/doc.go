/*
Package operation implements the core business logic for renaming identifiers
across a tree.

	+-------------+
	|   Runner    |
	|  (Driver)   |
	+------+------+
	       |
	+------+------+
	|   Engine    |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Applies one case-aware replacement to file contents and entry names
- Orders work so that directories are renamed after everything below them
- Reports one outcome per entry without stopping on failures

🔄 Flow:
1. Preflight: identical specs or pending git changes abort the run
2. Snapshot the tree once and sort it deepest first (package tree)
3. For each entry: rewrite content, then rename
4. Report each entry, then the replacement log

⚡ Key Responsibilities:
- Content outcomes: changed, unchanged, not a file, binary, too large
- Rename outcomes: renamed, no-op, target exists, OS failure
- Dry runs compute every outcome and touch nothing

🤝 Interfaces:
- status.FileManager: all disk access
- status.EntryTracker: outcome tracking and progress
- Reporter: live display of each entry

🔍 Example:

	engine, err := operation.NewEngine(operation.EngineOptions{
		OldSpec: "user/name",
		NewSpec: "account/id",
		Files:   status.New(&logger),
	})
	runner, err := operation.NewRunner(operation.RunnerOptions{Engine: engine})
	report, err := runner.Run(ctx, ".")
*/
package operation
