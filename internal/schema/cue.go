package schema

// mockupCUE is the embedded schema every mockup document must satisfy
// before decoding. Merge span values are deliberately unconstrained ints:
// the grid engine normalizes invalid spans to 1 instead of rejecting the
// document.
const mockupCUE = `
#Mockup: {
	title: string & !=""
	widgets: [...#Widget]
}

#Widget: {
	kind: "badge" | "chip" | "heading" | "status" | "note" | "table"
	id?:    string
	label?: string
	value?: string
	color?: string
	table?: #Table
	if kind == "table" {
		table: #Table
	}
}

#Table: {
	columns: [#Column, ...#Column]
	rows?: [...#Row]
	filters?: [...#Filter]
	grouping?:  #Group
	selection?: "none" | "single" | "multiple"
	pageSize?:  int & >0
	actions?: [...#Action]
	source?: #Source
	layout?: #Layout
}

#Column: {
	id:      string & !=""
	field?:  string
	label?:  string
	format?: "text" | "number" | "currency" | "date" | "datetime" | "status"
	sortable?:  bool
	align?:     "left" | "center" | "right"
	fixed?:     "left" | "right"
	width?:     int & >0
	resizable?: bool
	headerColspan?: int & >0
	headerRowspan?: int & >0
	statusMap?: {
		[string]: {
			label:  string
			color?: string
		}
	}
}

#Row: {
	id?: string | number
	cells: {
		[string]: _
	}
	merges?: {
		[string]: {
			hidden?:  bool
			colspan?: int
			rowspan?: int
		}
	}
}

#Filter: {
	id:     string & !=""
	column: string & !=""
	kind:   "text" | "select" | "number-range" | "date-range"
}

#Group: {
	field:            string & !=""
	collapsible?:     bool
	defaultExpanded?: bool
}

#Action: {
	id:    string & !=""
	label: string
	confirm?: {
		title?:   string
		message?: string
	}
}

#Source: {
	kind:  "sqlite"
	path:  string & !=""
	query: string & !=""
}

#Layout: {
	minColWidth?: int & >0
	maxColWidth?: int & >0
}
`
