package osc

// TypeTag identifies the wire type of a single OSC argument.
type TypeTag byte

const (
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeString  TypeTag = 's'
	TypeBlob    TypeTag = 'b'
)

// Argument is a single typed OSC argument. The implementations are exactly
// Int32, Float32, String and Blob; the unexported method keeps the set closed,
// so every Argument a Message carries is encodable.
type Argument interface {
	// Tag returns the type tag letter for the argument.
	Tag() TypeTag

	sealed()
}

// Int32 is a signed 32-bit integer argument ('i').
type Int32 int32

// Float32 is an IEEE-754 single-precision float argument ('f').
type Float32 float32

// String is a UTF-8 string argument ('s'). It must not contain a NUL byte.
type String string

// Blob is a length-prefixed opaque byte sequence argument ('b').
type Blob []byte

func (Int32) Tag() TypeTag   { return TypeInt32 }
func (Float32) Tag() TypeTag { return TypeFloat32 }
func (String) Tag() TypeTag  { return TypeString }
func (Blob) Tag() TypeTag    { return TypeBlob }

func (Int32) sealed()   {}
func (Float32) sealed() {}
func (String) sealed()  {}
func (Blob) sealed()    {}
