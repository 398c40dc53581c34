/*
Package typist is the action-translation stage of a text-expansion engine.

After a match has been rendered, the engine knows *what* should appear on
screen; typist decides *how* to get it there. It rewrites intent-level
events into mechanical commands for an input-simulation backend: type this
text, press Backspace this many times to erase the trigger, press ArrowLeft
this many times to land on the cursor hint.

# Concept

Events flow through a pipeline of middlewares. The action middleware
rewrites three event types and forwards everything else untouched:

  - rendered                 -> text_inject (with the match's forced injection mode, if any)
  - trigger_compensation     -> key_sequence_inject of Backspace presses
  - cursor_hint_compensation -> key_sequence_inject of ArrowLeft presses

The left separator that introduced a trigger (for example a leading space)
stays on screen: only the trigger text itself is erased.

# Usage

	provider := memory.NewFromMap(map[int]domain.TextInjectMode{
		7: domain.TextInjectModeClipboard,
	})

	eng := typist.New(typist.WithProvider(provider))

	for _, ev := range eng.Process(domain.NewTriggerCompensation(1, " :sig", " ")) {
		backend.Inject(ev)
	}
*/
package typist
