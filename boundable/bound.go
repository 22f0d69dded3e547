package boundable

// UnsignedBound lifts an unsigned literal into the type system. The zero
// value of an implementing type must report the literal.
type UnsignedBound interface {
	UnsignedBound() uint64
}

// SignedBound lifts a signed literal into the type system. The zero value of
// an implementing type must report the literal.
type SignedBound interface {
	SignedBound() int64
}

// Unsigned returns the literal carried by B.
func Unsigned[B UnsignedBound]() uint64 {
	var b B
	return b.UnsignedBound()
}

// Signed returns the literal carried by B.
func Signed[B SignedBound]() int64 {
	var b B
	return b.SignedBound()
}

// Predeclared unsigned bounds.
type (
	U0     struct{}
	U1     struct{}
	U2     struct{}
	U3     struct{}
	U4     struct{}
	U5     struct{}
	U6     struct{}
	U7     struct{}
	U8     struct{}
	U9     struct{}
	U10    struct{}
	U11    struct{}
	U12    struct{}
	U16    struct{}
	U20    struct{}
	U25    struct{}
	U32    struct{}
	U50    struct{}
	U64    struct{}
	U75    struct{}
	U99    struct{}
	U100   struct{}
	U101   struct{}
	U127   struct{}
	U128   struct{}
	U200   struct{}
	U255   struct{}
	U256   struct{}
	U1000  struct{}
	U1024  struct{}
	U4096  struct{}
	U65535 struct{}
)

func (U0) UnsignedBound() uint64     { return 0 }
func (U1) UnsignedBound() uint64     { return 1 }
func (U2) UnsignedBound() uint64     { return 2 }
func (U3) UnsignedBound() uint64     { return 3 }
func (U4) UnsignedBound() uint64     { return 4 }
func (U5) UnsignedBound() uint64     { return 5 }
func (U6) UnsignedBound() uint64     { return 6 }
func (U7) UnsignedBound() uint64     { return 7 }
func (U8) UnsignedBound() uint64     { return 8 }
func (U9) UnsignedBound() uint64     { return 9 }
func (U10) UnsignedBound() uint64    { return 10 }
func (U11) UnsignedBound() uint64    { return 11 }
func (U12) UnsignedBound() uint64    { return 12 }
func (U16) UnsignedBound() uint64    { return 16 }
func (U20) UnsignedBound() uint64    { return 20 }
func (U25) UnsignedBound() uint64    { return 25 }
func (U32) UnsignedBound() uint64    { return 32 }
func (U50) UnsignedBound() uint64    { return 50 }
func (U64) UnsignedBound() uint64    { return 64 }
func (U75) UnsignedBound() uint64    { return 75 }
func (U99) UnsignedBound() uint64    { return 99 }
func (U100) UnsignedBound() uint64   { return 100 }
func (U101) UnsignedBound() uint64   { return 101 }
func (U127) UnsignedBound() uint64   { return 127 }
func (U128) UnsignedBound() uint64   { return 128 }
func (U200) UnsignedBound() uint64   { return 200 }
func (U255) UnsignedBound() uint64   { return 255 }
func (U256) UnsignedBound() uint64   { return 256 }
func (U1000) UnsignedBound() uint64  { return 1000 }
func (U1024) UnsignedBound() uint64  { return 1024 }
func (U4096) UnsignedBound() uint64  { return 4096 }
func (U65535) UnsignedBound() uint64 { return 65535 }

// Predeclared signed bounds.
type (
	SMinus128 struct{}
	SMinus100 struct{}
	SMinus50  struct{}
	SMinus10  struct{}
	SMinus5   struct{}
	SMinus2   struct{}
	SMinus1   struct{}
	S0        struct{}
	S1        struct{}
	S2        struct{}
	S5        struct{}
	S10       struct{}
	S20       struct{}
	S50       struct{}
	S100      struct{}
	S127      struct{}
)

func (SMinus128) SignedBound() int64 { return -128 }
func (SMinus100) SignedBound() int64 { return -100 }
func (SMinus50) SignedBound() int64  { return -50 }
func (SMinus10) SignedBound() int64  { return -10 }
func (SMinus5) SignedBound() int64   { return -5 }
func (SMinus2) SignedBound() int64   { return -2 }
func (SMinus1) SignedBound() int64   { return -1 }
func (S0) SignedBound() int64        { return 0 }
func (S1) SignedBound() int64        { return 1 }
func (S2) SignedBound() int64        { return 2 }
func (S5) SignedBound() int64        { return 5 }
func (S10) SignedBound() int64       { return 10 }
func (S20) SignedBound() int64       { return 20 }
func (S50) SignedBound() int64       { return 50 }
func (S100) SignedBound() int64      { return 100 }
func (S127) SignedBound() int64      { return 127 }
