package utils

// HolidayCachePrefix is the prefix of Redis holiday cache keys, followed by
// "<merchantID>:<date>".
const HolidayCachePrefix = "holiday:"
