// Package backend declares the shared type vocabulary every kernel backend
// and the dispatch registry are built from: operation tags, backend tags,
// the dispatch key, and the backend descriptor.
package backend

// Complex is the type constraint for the two supported floating precisions.
type Complex interface {
	complex64 | complex128
}

// Float is the real-valued counterpart of Complex.
type Float interface {
	float32 | float64
}

// GateOp enumerates the supported unitary gate operations.
type GateOp uint8

const (
	Identity GateOp = iota
	PauliX
	PauliY
	PauliZ
	Hadamard
	S
	T
	RX
	RY
	RZ
	PhaseShift
	Rot
	CNOT
	CY
	CZ
	SWAP
	ControlledPhaseShift
	CRX
	CRY
	CRZ
	CRot
	IsingXX
	IsingXY
	IsingYY
	IsingZZ
	SingleExcitation
	SingleExcitationMinus
	SingleExcitationPlus
	DoubleExcitation
	DoubleExcitationMinus
	DoubleExcitationPlus
	Toffoli
	CSWAP
	MultiRZ

	numGateOps
)

// NumGateOps is the count of distinct GateOp values.
func NumGateOps() int { return int(numGateOps) }

// String returns the gate's canonical name.
func (g GateOp) String() string {
	if name, ok := gateNames[g]; ok {
		return name
	}

	return "GateOp(unknown)"
}

var gateNames = map[GateOp]string{
	Identity:              "Identity",
	PauliX:                "PauliX",
	PauliY:                "PauliY",
	PauliZ:                "PauliZ",
	Hadamard:              "Hadamard",
	S:                     "S",
	T:                     "T",
	RX:                    "RX",
	RY:                    "RY",
	RZ:                    "RZ",
	PhaseShift:            "PhaseShift",
	Rot:                   "Rot",
	CNOT:                  "CNOT",
	CY:                    "CY",
	CZ:                    "CZ",
	SWAP:                  "SWAP",
	ControlledPhaseShift:  "ControlledPhaseShift",
	CRX:                   "CRX",
	CRY:                   "CRY",
	CRZ:                   "CRZ",
	CRot:                  "CRot",
	IsingXX:               "IsingXX",
	IsingXY:               "IsingXY",
	IsingYY:               "IsingYY",
	IsingZZ:               "IsingZZ",
	SingleExcitation:      "SingleExcitation",
	SingleExcitationMinus: "SingleExcitationMinus",
	SingleExcitationPlus:  "SingleExcitationPlus",
	DoubleExcitation:      "DoubleExcitation",
	DoubleExcitationMinus: "DoubleExcitationMinus",
	DoubleExcitationPlus:  "DoubleExcitationPlus",
	Toffoli:               "Toffoli",
	CSWAP:                 "CSWAP",
	MultiRZ:               "MultiRZ",
}

// gateArity gives the number of wires each gate acts on. MultiRZ has
// variable arity and is reported as -1; callers must size it from the
// wire list they pass in.
var gateArity = map[GateOp]int{
	Identity: 1, PauliX: 1, PauliY: 1, PauliZ: 1, Hadamard: 1, S: 1, T: 1,
	RX: 1, RY: 1, RZ: 1, PhaseShift: 1, Rot: 1,
	CNOT: 2, CY: 2, CZ: 2, SWAP: 2, ControlledPhaseShift: 2,
	CRX: 2, CRY: 2, CRZ: 2, CRot: 2,
	IsingXX: 2, IsingXY: 2, IsingYY: 2, IsingZZ: 2,
	SingleExcitation: 2, SingleExcitationMinus: 2, SingleExcitationPlus: 2,
	DoubleExcitation: 4, DoubleExcitationMinus: 4, DoubleExcitationPlus: 4,
	Toffoli: 3, CSWAP: 3,
	MultiRZ: -1,
}

// Arity returns the number of wires GateOp g acts on, or -1 for MultiRZ,
// whose arity is the length of the caller-supplied wire list.
func Arity(g GateOp) int {
	return gateArity[g]
}

// GeneratorOp enumerates the gates for which a generator kernel exists.
// It is a strict subset of GateOp: RX, RY, RZ reuse the PauliGenerator
// mixin; the rest are diagonal or selectively-zeroing generators as
// described in the component design.
type GeneratorOp uint8

const (
	GeneratorRX GeneratorOp = iota
	GeneratorRY
	GeneratorRZ
	GeneratorPhaseShift
	GeneratorControlledPhaseShift
	GeneratorCRX
	GeneratorCRY
	GeneratorCRZ
	GeneratorIsingXX
	GeneratorIsingXY
	GeneratorIsingYY
	GeneratorIsingZZ
	GeneratorSingleExcitation
	GeneratorSingleExcitationMinus
	GeneratorSingleExcitationPlus
	GeneratorDoubleExcitation
	GeneratorDoubleExcitationMinus
	GeneratorDoubleExcitationPlus
	GeneratorMultiRZ

	numGeneratorOps
)

// NumGeneratorOps is the count of distinct GeneratorOp values.
func NumGeneratorOps() int { return int(numGeneratorOps) }

func (g GeneratorOp) String() string {
	if name, ok := generatorNames[g]; ok {
		return name
	}

	return "GeneratorOp(unknown)"
}

var generatorNames = map[GeneratorOp]string{
	GeneratorRX: "GeneratorRX", GeneratorRY: "GeneratorRY", GeneratorRZ: "GeneratorRZ",
	GeneratorPhaseShift:            "GeneratorPhaseShift",
	GeneratorControlledPhaseShift:  "GeneratorControlledPhaseShift",
	GeneratorCRX:                   "GeneratorCRX",
	GeneratorCRY:                   "GeneratorCRY",
	GeneratorCRZ:                   "GeneratorCRZ",
	GeneratorIsingXX:               "GeneratorIsingXX",
	GeneratorIsingXY:               "GeneratorIsingXY",
	GeneratorIsingYY:               "GeneratorIsingYY",
	GeneratorIsingZZ:               "GeneratorIsingZZ",
	GeneratorSingleExcitation:      "GeneratorSingleExcitation",
	GeneratorSingleExcitationMinus: "GeneratorSingleExcitationMinus",
	GeneratorSingleExcitationPlus:  "GeneratorSingleExcitationPlus",
	GeneratorDoubleExcitation:      "GeneratorDoubleExcitation",
	GeneratorDoubleExcitationMinus: "GeneratorDoubleExcitationMinus",
	GeneratorDoubleExcitationPlus:  "GeneratorDoubleExcitationPlus",
	GeneratorMultiRZ:               "GeneratorMultiRZ",
}

// GateFor maps a GeneratorOp back to the GateOp it differentiates;
// HasGenerator is built on it.
var GateFor = map[GeneratorOp]GateOp{
	GeneratorRX: RX, GeneratorRY: RY, GeneratorRZ: RZ,
	GeneratorPhaseShift:            PhaseShift,
	GeneratorControlledPhaseShift:  ControlledPhaseShift,
	GeneratorCRX:                   CRX,
	GeneratorCRY:                   CRY,
	GeneratorCRZ:                   CRZ,
	GeneratorIsingXX:               IsingXX,
	GeneratorIsingXY:               IsingXY,
	GeneratorIsingYY:               IsingYY,
	GeneratorIsingZZ:               IsingZZ,
	GeneratorSingleExcitation:      SingleExcitation,
	GeneratorSingleExcitationMinus: SingleExcitationMinus,
	GeneratorSingleExcitationPlus:  SingleExcitationPlus,
	GeneratorDoubleExcitation:      DoubleExcitation,
	GeneratorDoubleExcitationMinus: DoubleExcitationMinus,
	GeneratorDoubleExcitationPlus:  DoubleExcitationPlus,
	GeneratorMultiRZ:               MultiRZ,
}

// HasGenerator reports whether GateOp g has a corresponding generator, so
// callers need not attempt a dispatch lookup just to find out.
func HasGenerator(g GateOp) bool {
	for _, mapped := range GateFor {
		if mapped == g {
			return true
		}
	}

	return false
}

// MatrixOp enumerates the three dense-matrix operand arities.
type MatrixOp uint8

const (
	SingleQubitOp MatrixOp = iota
	TwoQubitOp
	MultiQubitOp

	numMatrixOps
)

// NumMatrixOps is the count of distinct MatrixOp values.
func NumMatrixOps() int { return int(numMatrixOps) }

func (m MatrixOp) String() string {
	switch m {
	case SingleQubitOp:
		return "SingleQubitOp"
	case TwoQubitOp:
		return "TwoQubitOp"
	case MultiQubitOp:
		return "MultiQubitOp"
	default:
		return "MatrixOp(unknown)"
	}
}

// Tag identifies a concrete kernel backend.
type Tag uint8

const (
	LM Tag = iota
	PI
	AVX2
	AVX512
	ParallelLM

	numTags
)

// NumTags is the count of distinct backend Tags.
func NumTags() int { return int(numTags) }

func (t Tag) String() string {
	switch t {
	case LM:
		return "LM"
	case PI:
		return "PI"
	case AVX2:
		return "AVX2"
	case AVX512:
		return "AVX512"
	case ParallelLM:
		return "ParallelLM"
	default:
		return "Tag(unknown)"
	}
}

// Threading is the caller's requested threading policy.
type Threading uint8

const (
	SingleThread Threading = iota
	MultiThread

	// AllThreading is a pseudo-value used only by the assign() shorthand
	// that applies an element to every Threading value.
	AllThreading
)

func (t Threading) String() string {
	switch t {
	case SingleThread:
		return "SingleThread"
	case MultiThread:
		return "MultiThread"
	case AllThreading:
		return "AllThreading"
	default:
		return "Threading(unknown)"
	}
}

// CPUMemoryModel is the buffer's declared alignment class.
type CPUMemoryModel uint8

const (
	Unaligned CPUMemoryModel = iota
	Aligned256
	Aligned512

	// AllMemoryModel is a pseudo-value used only by the assign() shorthand
	// that applies an element to every CPUMemoryModel value.
	AllMemoryModel
)

func (m CPUMemoryModel) String() string {
	switch m {
	case Unaligned:
		return "Unaligned"
	case Aligned256:
		return "Aligned256"
	case Aligned512:
		return "Aligned512"
	case AllMemoryModel:
		return "AllMemoryModel"
	default:
		return "CPUMemoryModel(unknown)"
	}
}

// Key is the packed (threading, memory-model) dispatch key:
// dispatch_key = (threading_index << 16) | memory_model_index.
type Key struct {
	Threading Threading
	Memory    CPUMemoryModel
}

// Pack encodes the dispatch key as a stable, comparable uint32.
func (k Key) Pack() uint32 {
	return uint32(k.Threading)<<16 | uint32(k.Memory)
}

// Descriptor is the immutable per-backend capability record.
type Descriptor struct {
	Tag  Tag
	Name string

	// RequiredAlignment maps precision (4 for complex64, 8 for complex128)
	// to the minimum buffer alignment in bytes this backend requires.
	RequiredAlignment map[int]int

	// PackedBytes maps precision to the backend's preferred packing
	// granularity in bytes.
	PackedBytes map[int]int

	Gates      map[GateOp]bool
	Generators map[GeneratorOp]bool
	Matrices   map[MatrixOp]bool
}

// ImplementsGate reports whether the backend declares op.
func (d Descriptor) ImplementsGate(op GateOp) bool { return d.Gates[op] }

// ImplementsGenerator reports whether the backend declares op.
func (d Descriptor) ImplementsGenerator(op GeneratorOp) bool { return d.Generators[op] }

// ImplementsMatrix reports whether the backend declares op.
func (d Descriptor) ImplementsMatrix(op MatrixOp) bool { return d.Matrices[op] }

// AllowedMemoryModels lists, for every CPUMemoryModel, which backend Tags
// may be bound to it by assign(). Unaligned/Aligned256/Aligned512 each
// allow LM and PI; SIMD backends are restricted to their matching
// alignment class, and ParallelLM follows LM's allow-list since it is a
// concurrency variant of the same memoryless math.
var AllowedMemoryModels = map[CPUMemoryModel]map[Tag]bool{
	Unaligned:  {LM: true, PI: true, ParallelLM: true},
	Aligned256: {LM: true, PI: true, ParallelLM: true, AVX2: true},
	Aligned512: {LM: true, PI: true, ParallelLM: true, AVX2: true, AVX512: true},
}
