package boundable

// UnsignedBounded is implemented by predicates over unsigned magnitudes.
// UnsignedInterval reports every magnitude the predicate accepts.
type UnsignedBounded interface {
	UnsignedInterval() Interval[uint64]
}

// UnsignedMin is implemented by unsigned predicates carrying a lower literal.
type UnsignedMin interface {
	UnsignedBounded
	UnsignedMin() uint64
}

// UnsignedMax is implemented by unsigned predicates carrying an upper literal.
type UnsignedMax interface {
	UnsignedBounded
	UnsignedMax() uint64
}

// UnsignedMinMax is implemented by unsigned predicates carrying both literals.
type UnsignedMinMax interface {
	UnsignedMin
	UnsignedMax
}

// SignedBounded is implemented by predicates over signed magnitudes.
// SignedInterval reports every magnitude the predicate accepts.
type SignedBounded interface {
	SignedInterval() Interval[int64]
}

// SignedMin is implemented by signed predicates carrying a lower literal.
type SignedMin interface {
	SignedBounded
	SignedMin() int64
}

// SignedMax is implemented by signed predicates carrying an upper literal.
type SignedMax interface {
	SignedBounded
	SignedMax() int64
}

// SignedMinMax is implemented by signed predicates carrying both literals.
type SignedMinMax interface {
	SignedMin
	SignedMax
}
