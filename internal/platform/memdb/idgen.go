package memdb

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type IDGen interface {
	New() string
}

// ULIDGen は単調増加の ULID を返す
type ULIDGen struct {
	mu      sync.Mutex
	entropy io.Reader
}

func NewULIDGen() *ULIDGen {
	return &ULIDGen{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGen) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), g.entropy).String()
}

type UUIDGen struct{}

func (UUIDGen) New() string { return uuid.NewString() }

// SeqGen hands out prefix+1, prefix+2, ... and never repeats within a process.
type SeqGen struct {
	prefix string
	n      atomic.Uint64
}

func NewSeqGen(prefix string) *SeqGen { return &SeqGen{prefix: prefix} }

func (g *SeqGen) New() string {
	return g.prefix + strconv.FormatUint(g.n.Add(1), 10)
}

// NewIDGen resolves the id scheme named in the configuration.
func NewIDGen(scheme string) (IDGen, error) {
	switch scheme {
	case "", "ulid":
		return NewULIDGen(), nil
	case "uuid":
		return UUIDGen{}, nil
	case "seq":
		return NewSeqGen(""), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}
