/*
Package status owns file system access and outcome tracking for drename.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Entries |
	|   (I/O)   |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads, sniffs, atomically rewrites and renames files
- Defines the closed outcome types for content and rename steps
- Tracks per-entry outcomes and progress
- Renders path diffs and the replacement table

🤝 Interfaces:
- FileManager: file system operations used by the engine
- EntryTracker: outcome tracking and progress
- FileFormatter: log message formatting

📝 Design Philosophy:
The engine decides what a file or name should become; this package is the only
place that touches the disk. Content outcomes (ContentStatus) and rename
outcomes (RenameStatus) are separate enums because the two steps of an entry
succeed or fail independently.

🔍 Example:

	mgr := status.New(&logger)

	binary, err := mgr.IsBinary(ctx, path)
	err = mgr.WriteFileAtomic(ctx, path, content)

	mgr.TrackEntry(ctx, entry)
	fmt.Println(status.FormatEntryRow(entry))
*/
package status
