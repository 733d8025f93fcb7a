package grid

// Intent is an abstract user intention routed through the Controller. The
// same intent type serves every transport: pointer, keyboard, HTTP, or a
// programmatic call. See controller_test.go for the full routing table.
type Intent interface {
	isIntent()
}

// SortRequest cycles the sort on a column: asc, then desc, then unsorted.
// Ignored for unknown or non-sortable columns.
type SortRequest struct {
	ColumnID string
}

// FilterApply replaces the active filter values and resets to page 0.
type FilterApply struct {
	Values FilterValues
}

// FilterReset clears all filters.
type FilterReset struct{}

// SelectRow applies a selection by row identity per the configured mode.
type SelectRow struct {
	ID string
}

// SelectAll selects or deselects every row of the current derived page.
type SelectAll struct {
	Flag bool
}

// PageChange moves to a 0-based page, clamped into the valid range.
type PageChange struct {
	Page int
}

// PageSizeChange changes the page size and resets to page 0.
type PageSizeChange struct {
	Size int
}

// GroupToggle flips one group's collapsed state.
type GroupToggle struct {
	Name string
}

// CollapseAllGroups collapses every group in the original data.
type CollapseAllGroups struct{}

// ExpandAllGroups expands every group.
type ExpandAllGroups struct{}

// ResizeStart begins a column resize drag.
type ResizeStart struct {
	ColumnID string
	PointerX float64
}

// ResizeMove updates the transient preview width of the active drag.
type ResizeMove struct {
	PointerX float64
}

// ResizeEnd commits the active drag.
type ResizeEnd struct{}

// ResizeCancel abandons the active drag without committing.
type ResizeCancel struct{}

// SetColumnWidth commits a programmatic (non-drag) column resize.
type SetColumnWidth struct {
	ColumnID string
	Width    float64
}

// SetData replaces the dataset wholesale. TotalCount, when non-nil,
// overrides the post-filter count for server-driven pagination.
type SetData struct {
	Rows       []Row
	TotalCount *int
}

// InvokeRowAction surfaces an (action, row) pair to the host. The engine
// never executes actions itself; the host presents any confirmation gate
// and runs the domain behavior.
type InvokeRowAction struct {
	ActionID string
	RowID    string
}

func (SortRequest) isIntent()       {}
func (FilterApply) isIntent()       {}
func (FilterReset) isIntent()       {}
func (SelectRow) isIntent()         {}
func (SelectAll) isIntent()         {}
func (PageChange) isIntent()        {}
func (PageSizeChange) isIntent()    {}
func (GroupToggle) isIntent()       {}
func (CollapseAllGroups) isIntent() {}
func (ExpandAllGroups) isIntent()   {}
func (ResizeStart) isIntent()       {}
func (ResizeMove) isIntent()        {}
func (ResizeEnd) isIntent()         {}
func (ResizeCancel) isIntent()      {}
func (SetColumnWidth) isIntent()    {}
func (SetData) isIntent()           {}
func (InvokeRowAction) isIntent()   {}

// ActionRequest is the pair the engine surfaces when a row action fires,
// plus the optional confirmation gate the host must present first.
type ActionRequest struct {
	Action  RowAction
	Row     Row
	Confirm *Confirm
}

// Controller is the single seam between the engine and a render adapter.
// It holds the current snapshot, routes each intent to the matching state
// mutator, and signals the render hook afterward. It owns no presentation
// logic and no locks; hosts serialize Dispatch calls externally.
type Controller struct {
	state    State
	onRender func(State)
	onResize func(columnID string, width int)
	onAction func(ActionRequest)
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithRenderHook registers the "render now" signal. Called after every
// dispatched intent that transitions state, including transient resize
// previews; hosts composing a full-tree render should throttle
// high-frequency intents themselves.
func WithRenderHook(fn func(State)) ControllerOption {
	return func(c *Controller) { c.onRender = fn }
}

// WithResizeHook registers the committed-resize callback. It fires on drag
// commit and programmatic resize, never on preview moves.
func WithResizeHook(fn func(columnID string, width int)) ControllerOption {
	return func(c *Controller) { c.onResize = fn }
}

// WithActionHook registers the row-action collaborator.
func WithActionHook(fn func(ActionRequest)) ControllerOption {
	return func(c *Controller) { c.onAction = fn }
}

// NewController creates a Controller over an initial snapshot.
func NewController(initial State, opts ...ControllerOption) *Controller {
	c := &Controller{state: initial}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.state
}

// Dispatch routes one intent, swaps in the resulting snapshot, fires hooks,
// and returns the new snapshot.
func (c *Controller) Dispatch(intent Intent) State {
	switch in := intent.(type) {
	case SortRequest:
		c.state = c.state.WithSort(c.nextSort(in.ColumnID))
	case FilterApply:
		c.state = c.state.WithFilters(in.Values)
	case FilterReset:
		c.state = c.state.WithFilters(nil)
	case SelectRow:
		c.state = c.state.WithRowSelected(in.ID)
	case SelectAll:
		c.state = c.state.WithAllSelected(in.Flag)
	case PageChange:
		c.state = c.state.WithPage(in.Page)
	case PageSizeChange:
		c.state = c.state.WithPageSize(in.Size)
	case GroupToggle:
		c.state = c.state.WithGroupToggled(in.Name)
	case CollapseAllGroups:
		c.state = c.state.WithAllGroupsCollapsed()
	case ExpandAllGroups:
		c.state = c.state.WithAllGroupsExpanded()
	case ResizeStart:
		c.state = c.state.WithResizeStart(in.ColumnID, in.PointerX)
	case ResizeMove:
		c.state = c.state.WithResizeMove(in.PointerX)
	case ResizeEnd:
		id, active := c.state.Resizing()
		c.state = c.state.WithResizeEnd()
		if active && c.onResize != nil {
			c.onResize(id, c.state.ColumnWidth(id))
		}
	case ResizeCancel:
		c.state = c.state.WithResizeCancel()
	case SetColumnWidth:
		before := c.state.ColumnWidth(in.ColumnID)
		c.state = c.state.WithColumnWidth(in.ColumnID, in.Width)
		if after := c.state.ColumnWidth(in.ColumnID); after != before && c.onResize != nil {
			c.onResize(in.ColumnID, after)
		}
	case SetData:
		c.state = c.state.WithData(in.Rows, in.TotalCount)
	case InvokeRowAction:
		c.invokeAction(in)
		return c.state
	}

	if c.onRender != nil {
		c.onRender(c.state)
	}
	return c.state
}

// nextSort computes the sort cycle for a header click: unsorted -> asc ->
// desc -> unsorted. Requests naming unknown or non-sortable columns keep
// the current config.
func (c *Controller) nextSort(columnID string) *SortConfig {
	var col *Column
	for i := range c.state.cfg.Columns {
		if c.state.cfg.Columns[i].ID == columnID {
			col = &c.state.cfg.Columns[i]
			break
		}
	}
	if col == nil || !col.Sortable {
		return c.state.sort
	}
	cur := c.state.sort
	switch {
	case cur == nil || cur.Column != columnID:
		return &SortConfig{Column: columnID, Direction: SortAsc}
	case cur.Direction == SortAsc:
		return &SortConfig{Column: columnID, Direction: SortDesc}
	default:
		return nil
	}
}

// invokeAction resolves the (action, row) pair and hands it to the host.
// Unknown action ids and unknown row ids are dropped silently.
func (c *Controller) invokeAction(in InvokeRowAction) {
	if c.onAction == nil {
		return
	}
	var action *RowAction
	for i := range c.state.cfg.Actions {
		if c.state.cfg.Actions[i].ID == in.ActionID {
			action = &c.state.cfg.Actions[i]
			break
		}
	}
	if action == nil {
		return
	}
	for _, row := range c.state.original {
		if row.ID == in.RowID {
			c.onAction(ActionRequest{Action: *action, Row: row, Confirm: action.Confirm})
			return
		}
	}
}
