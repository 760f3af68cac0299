// File: utils/constants.go
package utils

import "time"

// UnreadCountCachePrefix is the prefix for Redis unread-notification-count keys.
const UnreadCountCachePrefix = "unread:"

// UnreadCountCacheTTL is the time-to-live for unread-count cache entries.
const UnreadCountCacheTTL = 10 * time.Minute
