/*
Package operation implements the three capture day file chores.

	+-----------+     +-------------+     +-----------+
	|  Dialog   | --> |   Runner    | --> | Operation |
	| (request) |     | (classify)  |     | (files.*) |
	+-----------+     +------+------+     +-----------+
	                         |
	                      *Result

🎯 Operations:
  - migrate: merge a source tree into a destination tree, counting files
  - scaffold: create <root>/<yymmdd>/{Mocap/Raw,Mocap/Cleaned,RefCams} and
    register RefCams as the host data directory
  - refclean: move loose files into folders named by the text before their
    first underscore

🔄 Results:
Every run ends in a Result with one of three kinds. KindValidation means the
request was rejected before anything on disk changed. KindRuntime means a file
operation failed; whatever was copied, created or moved before the failure
stays where it is. Nothing is retried.

⚡ Execution:
Operations run synchronously on the caller goroutine. The merge reports
progress after every top level entry through a status.Reporter.

🔍 Example:

	runner := operation.NewRunner()
	res := runner.Run(ctx, operation.NewMergeOperation(operation.Options{
		Progress: status.NewManager(nil, status.NewPtermBar()),
	}, operation.MergeRequest{Source: src, Destination: dst}))
	if !res.OK() {
		return res.Err
	}
*/
package operation
