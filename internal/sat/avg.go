package sat

// EMA is an exponential moving average, used here to smooth the per-iteration
// growth rate of the complexity counter into a single "pace" figure that the
// console reporter can show without re-deriving it from the full history on
// every print.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0, 1]; higher values weigh
// history more heavily against the latest sample.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

func (ema *EMA) Val() float64 {
	return ema.value
}
