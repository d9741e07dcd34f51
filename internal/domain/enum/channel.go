package enum

// Channel is the canonical sales channel a transaction row is attributed
// to. The enumeration is closed: classification always produces exactly
// one of these four values.
type Channel string

const (
	ChannelZomato Channel = "zomato"
	ChannelSwiggy Channel = "swiggy"
	ChannelDining Channel = "dining"
	ChannelParcel Channel = "parcel"
)

// Channels lists every canonical channel in stable order.
func Channels() []Channel {
	return []Channel{ChannelZomato, ChannelSwiggy, ChannelDining, ChannelParcel}
}

func (c Channel) String() string {
	return string(c)
}

// IsValid reports whether c is one of the four canonical channels.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelZomato, ChannelSwiggy, ChannelDining, ChannelParcel:
		return true
	}
	return false
}
