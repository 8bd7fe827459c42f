package ip

import (
	"encoding/hex"
	"net"
	"sync"
)

const unknownHex = "00000000"

var (
	hexOnce sync.Once
	hexAddr string
)

// IPv4Hex is the first non-loopback IPv4 address of this host as eight hex
// digits, computed once. Hosts without one get all zeros.
func IPv4Hex() string {
	hexOnce.Do(func() {
		hexAddr = lookupIPv4Hex(net.InterfaceAddrs)
	})
	return hexAddr
}

func lookupIPv4Hex(addrsFn func() ([]net.Addr, error)) string {
	addrs, err := addrsFn()
	if err != nil {
		return unknownHex
	}

	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ipv4 := ipNet.IP.To4(); ipv4 != nil {
				return hex.EncodeToString(ipv4)
			}
		}
	}
	return unknownHex
}
