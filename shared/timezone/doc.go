// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time and conversion:
//     now := timezone.Now()                    // current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // convert any time to app timezone
//
//  2. Calendar dates for check-in/check-out:
//     day, err := timezone.ParseDay("2025-03-01")
//     day, err := timezone.ParseDay("2025-02-28T21:00:00.000Z") // truncated to the local date
//
//  3. Formatting:
//     formatted := timezone.Format(time.Now(), time.RFC3339)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (IANA names such as "Africa/Nairobi" or "UTC") and is initialized when the
// package is imported.
package timezone
