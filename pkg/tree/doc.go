/*
Package tree snapshots the entries under a root and orders them for renaming.

	+-----------+      +-----------+
	|  Collect  | ---> |   Order   |
	| (snapshot)|      | (deepest) |
	+-----------+      +-----------+

🎯 Purpose:
- Gather every file and directory below a root exactly once, before anything moves
- Skip hidden entries and user ignore globs
- Sort the snapshot so descendants come before their ancestors

📝 Design Philosophy:
Renaming a directory changes the path of everything under it. Rather than
re-walking after each rename, the whole tree is captured up front and sorted
by depth, deepest first. By the time a directory is renamed, every path under
it has already been handled using the directory's old name.
*/
package tree
