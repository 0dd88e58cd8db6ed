package datemath

// DateFormatISO is the layout of YYYY-MM-DD dates.
const DateFormatISO = "2006-01-02"
