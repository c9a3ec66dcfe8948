package main

import (
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/strategy"
)

// titForTat cooperates on the first round, then replays the opponent's
// previous-round move, grounded on the source's t4t-games axelrod.rs
// TitForTat and adapted to this package's generic Strategy shape.
func titForTat() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
	return strategy.Func[perplayer.PerPlayer[[]string], string, int](
		func(ctx strategy.Context[perplayer.PerPlayer[[]string], string, int]) string {
			outcomes := ctx.History.Outcomes()
			if len(outcomes) == 0 {
				return "C"
			}
			opponent := perplayer.MustIndex(1-ctx.MyIndex.Value(), ctx.MyIndex.Arity())
			last := outcomes[len(outcomes)-1]
			plies := last.ByPlayer(opponent)
			if len(plies) == 0 {
				return "C"
			}
			return plies[0].Move
		},
	)
}
