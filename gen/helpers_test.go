package gen

func iptr(v int) *int         { return &v }
func i64ptr(v int64) *int64   { return &v }
func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }
func sptr(v string) *string   { return &v }
