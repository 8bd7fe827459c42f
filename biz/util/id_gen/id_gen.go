package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"moodmate/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var logIDs = NewIDGenerator(10)

// NewLogID returns a request log id: base36 millis, host ip hex, pid and a
// random suffix.
func NewLogID() string {
	return logIDs.NewID()
}

// IDGenerator keeps a small pool of ids filled by one background goroutine.
type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(maxSize, stop, ip.IPv4Hex(), strconv.Itoa(os.Getpid())),
		stop: stop,
	}
}

func (g *IDGenerator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func (g *IDGenerator) NewID() string {
	return <-g.pool
}

func newPool(size int, stop <-chan struct{}, hostHex, pid string) <-chan string {
	pool := make(chan string, size)

	go func() {
		for {
			var sb strings.Builder
			sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
			sb.WriteString(hostHex)
			sb.WriteString(pid)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
