/*
Package status tracks progress of long running file chores and reports
file changes to the user.

	      +-------------+
	      |  Operation  |
	      +------+------+
	             | Reporter
	      +------+------+
	      |   Manager   |
	      +------+------+
	             |
	   +---------+---------+
	   |                   |
	+--+----+        +-----+------+
	|  Bar  |        | UserLogger |
	| (UI)  |        |   (UI)     |
	+-------+        +------------+

🎯 Purpose:
- Counts progress of a merge run (entries done, files copied)
- Drives a terminal progress bar when one is attached
- Describes file changes (created, moved, skipped, failed)

🤝 Interfaces:
- Reporter: what operations report progress through
- Bar: a visual bar, see PtermBar and TextBar
- FileFormatter: turns progress into text

🔍 Example:

	mgr := status.NewManager(nil, status.NewPtermBar())
	mgr.StartOperation(ctx, 3)
	mgr.UpdateProgress(ctx, status.Progress{Done: 1, Total: 3, Entry: "Mocap", Copied: 12})
	mgr.FinishOperation(ctx, "Files copied successfully")
*/
package status
