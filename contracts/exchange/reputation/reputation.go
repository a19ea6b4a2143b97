// Package reputation keeps signed per-identity scores used to gate crowd
// task participation.
package reputation

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const scorePrefix = 'r'

// Get returns reputation score of the identity, 0 if it has never been
// scored.
func Get(ctx storage.Context, identity interop.Hash160) int {
	score := storage.Get(ctx, key(identity))
	if score == nil {
		return 0
	}

	return score.(int)
}

// Award increases reputation score of the identity by points.
func Award(ctx storage.Context, identity interop.Hash160, points int) int {
	checkPoints(points)

	score := Get(ctx, identity)
	if score > common.MaxAmount-points {
		common.Abort(common.ErrOverflow, "reputation score exceeds limit")
	}

	return set(ctx, identity, score+points)
}

// Punish decreases reputation score of the identity by points. Score has no
// lower floor besides -MaxAmount.
func Punish(ctx storage.Context, identity interop.Hash160, points int) int {
	checkPoints(points)

	score := Get(ctx, identity)
	if score < points-common.MaxAmount {
		common.Abort(common.ErrOverflow, "reputation score exceeds limit")
	}

	return set(ctx, identity, score-points)
}

func set(ctx storage.Context, identity interop.Hash160, score int) int {
	storage.Put(ctx, key(identity), score)
	runtime.Notify("ReputationChanged", identity, score)

	return score
}

func checkPoints(points int) {
	if points <= 0 || points > common.MaxAmount {
		common.Abort(common.ErrInvalidArgument, "reputation points must be positive")
	}
}

func key(identity interop.Hash160) []byte {
	return append([]byte{scorePrefix}, identity...)
}
