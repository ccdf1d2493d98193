package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldMerchant   = "merchant"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldItem       = "item"
	FieldTotal      = "total"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldOperation  = "operation"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
