package literal

// magicStrings and magicStringsExt are compile-time-known short
// strings the engine is certain to need regardless of the script
// being lexed (keyword spellings and common property names), so they
// are preloaded into every Table rather than interned lazily on
// first use. The split into two tables mirrors the source engine's
// distinction between a core set and an extended set layered on top;
// here it is kept mainly so the Kind tag round-trips through
// lookup and re-interning the same way it would for a loaded-from-
// snapshot table.
var magicStrings = [...]string{
	"",
	"length",
	"prototype",
	"constructor",
	"undefined",
	"true",
	"false",
	"null",
	"NaN",
	"Infinity",
	"arguments",
	"this",
	"toString",
	"valueOf",
}

var magicStringsExt = [...]string{
	"get",
	"set",
	"name",
	"message",
	"writable",
	"enumerable",
	"configurable",
	"value",
}
