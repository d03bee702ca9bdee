// Package printfmt is a type-safe printf engine that interprets C99 format
// directives against arbitrary Go values.
//
// A directive has the form
//
//	%[flags][width][.precision][length]type
//
// and is mapped onto a [Context] (base, float style, alignment, fill, width,
// precision, case and sign toggles) that drives rendering. The type of each
// argument comes from the Go value, never from the directive, so "%d" with a
// string prints the string and "%s" with an int prints the number. Length
// modifiers (l h L j z t) are accepted and ignored.
//
// The central entry points are [Fprintf], [Sprintf] and [Printf], plus the
// same methods on a configured [Engine]:
//
//	printfmt.Fprintf(os.Stdout, "%s, %s %d, %.2d:%.2d\n",
//		weekday, month, day, hour, min)
//
// # Conversions
//
//   - d i u → decimal integer
//   - o → octal integer
//   - x X → hexadecimal integer (X uppercase)
//   - p → address of pointers, maps, chans, funcs, slices and [Addresser]
//   - e E → scientific float
//   - f F → fixed float
//   - g G → shortest of %e and %f
//   - c → character for integers, [Char] and [CharConverter]
//   - s → generic text; with a precision the text is truncated
//   - a A → accepted, rendered like %g (hexadecimal floats are not supported)
//
// # Flags
//
//   - '#' → base prefix (0, 0x) and forced decimal point
//   - '0' → zero padding between the sign and the digits
//   - '-' → left alignment, overrides '0'
//   - ' ' → space in place of a '+' sign
//   - '+' → always print a sign, overrides ' '
//
// A precision on an integer conversion without a width is a minimum digit
// count: "%.4d" of 7 prints "0007".
//
// # Argument Count
//
// The number of directives must equal the number of arguments. Extra
// arguments and missing arguments are both violations.
//
// # Extension
//
// Values render through [fmt.Stringer] and error when they implement them.
// Implement [Formatter] to take full control of a value's output, including
// width and flags. [CharConverter] and [Addresser] opt a type into %c and %p.
//
// # Errors
//
// Violations are reported as [*SpecError] wrapping one of the sentinels:
//
//   - [ErrMalformedSpec] → unterminated directive, trailing '%', '*' width or
//     precision, %n
//   - [ErrArgumentCount] → more or fewer arguments than directives
//
// Every violation is passed to an [ErrorHandler] before anything else
// happens. The default, [Abort], panics. Install [Return] with
// [SetErrorHandler] or [WithErrorHandler] to receive ordinary errors:
//
//	e := printfmt.New(printfmt.WithErrorHandler(printfmt.Return))
//	if err := e.Fprintf(w, "%d\n", n); err != nil { ... }
//
// # Limits
//
// Width and precision count bytes, not display columns. Locale-aware
// formatting, '*' widths and %n are not supported.
package printfmt
