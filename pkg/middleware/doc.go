/*
Package middleware implements the action-translation stage of the typist pipeline.

The Action middleware rewrites the events produced after a match has been
rendered into commands for the injection backend. Its arithmetic decides
how many Backspace presses erase a trigger (keeping the left separator that
introduced it) and how many ArrowLeft presses place the cursor on the
cursor hint.

# Character units

Counts are measured in Unicode code points by default. CharUnitGrapheme
switches to extended grapheme clusters for applications whose Backspace
removes a whole user-perceived character.

# Usage

	action := middleware.NewAction(provider,
		middleware.WithLogger(logger),
		middleware.WithCharUnit(middleware.CharUnitGrapheme),
	)

	out := action.Next(event, ports.NopDispatcher)
*/
package middleware
