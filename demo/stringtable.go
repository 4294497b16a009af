// This file contains the types describing string tables and the
// distinguished "userinfo" PlayerInfo records they carry (spec.md §3, §4.5).

package demo

// StringTable is one named, ordered, index-addressed table of strings with
// optional opaque per-entry user data (spec.md §3).
type StringTable struct {
	// Name identifies the table, e.g. "userinfo".
	Name string

	// MaxEntries bounds the table's size; it also determines the bit
	// width used to address entries during delta updates (spec.md §4.5).
	MaxEntries int

	// UserDataFixedSize, when true, means every entry's user data is
	// exactly UserDataSizeBits bits long.
	UserDataFixedSize bool

	// UserDataSize is the fixed user-data size in bytes, if
	// UserDataFixedSize is set.
	UserDataSize uint32

	// UserDataSizeBits is the fixed user-data size in bits, if
	// UserDataFixedSize is set.
	UserDataSizeBits uint32

	// Entries is the ordered sequence of rows, addressed by index.
	Entries []*StringEntry
}

// StringEntry is one row of a StringTable.
type StringEntry struct {
	// Key is the entry's string; not guaranteed unique (≤1024 bytes).
	Key string

	// UserData is the entry's opaque payload, or nil if none was present.
	UserData []byte
}

// PlayerInfo is the decoded user data of a "userinfo" string-table entry
// (spec.md §3, binary layout in §6).
type PlayerInfo struct {
	// Version is the player-info record's version field, big-endian.
	Version uint64

	// XUID is the player's Steam/Xbox identifier, big-endian.
	XUID uint64

	// Name is the player's display name.
	Name string

	// UserID identifies the player within this recording.
	UserID int32

	// GUID is the player's legacy Steam GUID string.
	GUID string

	// FriendsID is the player's friends-network identifier.
	FriendsID uint32

	// FriendsName is the player's friends-network display name.
	FriendsName string

	// FakePlayer marks a bot.
	FakePlayer bool

	// IsHLTV marks the GOTV proxy's own pseudo-player entry.
	IsHLTV bool

	// CustomFiles holds up to 4 custom-content CRCs.
	CustomFiles [4]uint32

	// FilesDownloaded counts custom files downloaded by this player.
	FilesDownloaded byte

	// EntityID is the world entity this player currently occupies;
	// used as the reverse-lookup key from entity to player.
	EntityID int32
}
