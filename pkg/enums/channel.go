package enums

import "fmt"

// Channel records where a sale originated; the backend keeps it for reporting.
type Channel string

const (
	ChannelKiosk        Channel = "KIOSK"
	ChannelMarket       Channel = "MARKET"
	ChannelWeb          Channel = "WEB"
	ChannelSubscription Channel = "SUBSCRIPTION"
)

var validChannels = []Channel{
	ChannelKiosk,
	ChannelMarket,
	ChannelWeb,
	ChannelSubscription,
}

// String implements fmt.Stringer.
func (c Channel) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Channel.
func (c Channel) IsValid() bool {
	for _, candidate := range validChannels {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseChannel converts raw input into a Channel.
func ParseChannel(value string) (Channel, error) {
	for _, candidate := range validChannels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid channel %q", value)
}
