package main

import "fmt"

func isPrintable(b byte) bool {
	return b >= 32 && b <= 126
}

// checkForPerms verifies the device is readable before any sector IO.
func checkForPerms(deviceToRead string) error {
	if !hasReadPermission(deviceToRead) {
		return fmt.Errorf("no permission to read %s, try with elevated privileges", deviceToRead)
	}
	return nil
}
