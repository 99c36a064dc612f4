package numeric

import (
	"sync"

	"github.com/cockroachdb/apd/v3"
	"go.uber.org/zap"
)

// quantizers holds the power-of-ten quantization references:
//
//	frac[i]     = 1E-i, for i in [0, MaxPrec]
//	integral[i] = 1E+i, for i in [0, MaxPrec+1]
//
// integral has one more entry than frac: rounding a 34-digit integer to
// the nearest 1E+34 yields 1E+34, and only rounding to 1E+35 gives 0.
var quantizers struct {
	once     sync.Once
	frac     [MaxPrec + 1]apd.Decimal
	integral [MaxPrec + 2]apd.Decimal
}

func buildQuantizers() {
	log := logger()
	if p := defaultContext.engine().Precision; p != MaxPrec {
		log.Fatal("engine precision does not match the maximum precision",
			zap.Uint32("engine", p),
			zap.Int("expected", MaxPrec),
		)
	}
	for i := range quantizers.frac {
		quantizers.frac[i].SetFinite(1, int32(-i))
	}
	for i := range quantizers.integral {
		quantizers.integral[i].SetFinite(1, int32(i))
	}
	for i := range quantizers.frac {
		verifyQuantizer(log, &quantizers.frac[i], int32(-i))
	}
	for i := range quantizers.integral {
		verifyQuantizer(log, &quantizers.integral[i], int32(i))
	}
	log.Debug("quantizers built",
		zap.Int("frac", len(quantizers.frac)),
		zap.Int("integral", len(quantizers.integral)),
	)
}

func verifyQuantizer(log *zap.Logger, q *apd.Decimal, exp int32) {
	if q.Form != apd.Finite || q.Negative || q.Exponent != exp || q.Coeff.Cmp(apd.NewBigInt(1)) != 0 {
		log.Fatal("invalid quantizer",
			zap.Stringer("quantizer", q),
			zap.Int32("exponent", exp),
		)
	}
}

// fracQuantizer returns 1E-n.
// It panics if n is not in [0, MaxScale].
func fracQuantizer(n int) *apd.Decimal {
	quantizers.once.Do(buildQuantizers)
	return &quantizers.frac[n]
}

// integralQuantizer returns 1E+n.
// It panics if n is not in [0, MaxPrec+1].
func integralQuantizer(n int) *apd.Decimal {
	quantizers.once.Do(buildQuantizers)
	return &quantizers.integral[n]
}
