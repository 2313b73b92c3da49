package comparison

// Outcome names the side holding the larger value for one stat.
type Outcome string

const (
	OutcomeLeft  Outcome = "left"
	OutcomeRight Outcome = "right"
	OutcomeEqual Outcome = "equal"
)

// Value is a stat value that may be absent or non-numeric.
type Value struct {
	number  float64
	numeric bool
}

func Number(v float64) Value {
	return Value{number: v, numeric: true}
}

func Missing() Value {
	return Value{}
}

// Optional converts an optional stat field into a Value.
func Optional(v *float64) Value {
	if v == nil {
		return Missing()
	}
	return Number(*v)
}

func (v Value) Float() (float64, bool) {
	return v.number, v.numeric
}

func (v Value) IsNumeric() bool {
	return v.numeric
}

// Compare returns the side with the strictly greater value. Ties and any
// non-numeric operand are OutcomeEqual.
func Compare(left, right Value) Outcome {
	if !left.numeric || !right.numeric {
		return OutcomeEqual
	}
	switch {
	case left.number > right.number:
		return OutcomeLeft
	case left.number < right.number:
		return OutcomeRight
	default:
		return OutcomeEqual
	}
}

// StatKey is a stat name with its display label.
type StatKey struct {
	Key   string
	Label string
}

// Row is one evaluated line of a comparison table.
type Row struct {
	Key     string
	Label   string
	Left    Value
	Right   Value
	Outcome Outcome
}

// Table compares left and right for every key, in key order. Each key is
// evaluated on its own; a key missing from either side compares as equal.
func Table(left, right map[string]Value, keys []StatKey) []Row {
	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		l := left[key.Key]
		r := right[key.Key]
		rows = append(rows, Row{
			Key:     key.Key,
			Label:   key.Label,
			Left:    l,
			Right:   r,
			Outcome: Compare(l, r),
		})
	}

	return rows
}

// Tally counts how many rows each side won.
func Tally(rows []Row) (left, right int) {
	for _, row := range rows {
		switch row.Outcome {
		case OutcomeLeft:
			left++
		case OutcomeRight:
			right++
		}
	}
	return left, right
}
