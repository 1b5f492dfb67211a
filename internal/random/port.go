package random

import (
	"fmt"
	"net"
)

// UnusedPort returns port nobody listens on at the moment of the call
func UnusedPort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, fmt.Errorf("cannot listen on random port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// UnusedAddress returns host:port pair with unused port
func UnusedAddress(host string) (string, error) {
	port, err := UnusedPort()
	if err != nil {
		return "", err
	}
	return net.JoinHostPort(host, fmt.Sprint(port)), nil
}
