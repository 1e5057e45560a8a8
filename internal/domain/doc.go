// Package domain turns daily weather readings into text reports.
//
// # Input
//
// Each row of the source file is one day: an ISO-8601 date and the day's low
// and high in whole degrees Fahrenheit. Rows keep file order, which decides
// report order and tie-breaks.
//
// Dates may be date-only ("2021-07-02") or datetimes with an optional UTC
// offset ("2021-07-02T07:00:00+08:00"). The display date is the calendar date
// as written; no time-zone conversion happens.
//
// # Conversion
//
// Celsius = (F - 32) * 5/9, rounded to one decimal with ties to even on the
// exact float value. Averages are computed from the rounded daily values and
// rounded again.
//
// # Reports
//
// Summary:
//
//	{N} Day Overview
//	  The lowest temperature will be {min}°C, and will occur on {date}.
//	  The highest temperature will be {max}°C, and will occur on {date}.
//	  The average low this week is {avg_low}°C.
//	  The average high this week is {avg_high}°C.
//
// Daily, one block per row, blank line between blocks and after the last:
//
//	---- {date} ----
//	  Minimum Temperature: {min}°C
//	  Maximum Temperature: {max}°C
//
// # Known inconsistency
//
// FindMin and FindMax report the last index of a repeated extreme, but the
// summary prints the date of the first row holding that value. Both indexes
// are kept on DatedExtreme so callers can see when they disagree.
package domain
