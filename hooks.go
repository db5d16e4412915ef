package composite

// FormatHook observes Format calls. BeforeFormat runs after locale
// resolution and before parsing; AfterFormat runs once rendering finished,
// with Result and Err populated.
type FormatHook interface {
	BeforeFormat(ctx *FormatHookContext)
	AfterFormat(ctx *FormatHookContext)
}

// FormatHookContext carries per-call state between hooks. Metadata is
// shared across all hooks of one call.
type FormatHookContext struct {
	Locale   string
	Template string
	Result   string
	Err      error
	Metadata map[string]any
}

func (ctx *FormatHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *FormatHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *FormatHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	value, ok := ctx.Metadata[key]
	return value, ok
}

// FormatHookFuncs adapts plain functions to the FormatHook interface.
// Either field may be nil.
type FormatHookFuncs struct {
	Before func(ctx *FormatHookContext)
	After  func(ctx *FormatHookContext)
}

func (h FormatHookFuncs) BeforeFormat(ctx *FormatHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h FormatHookFuncs) AfterFormat(ctx *FormatHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func (f *Formatter) beforeFormat(ctx *FormatHookContext) {
	for _, hook := range f.hooks {
		if hook == nil {
			continue
		}
		hook.BeforeFormat(ctx)
	}
}

func (f *Formatter) afterFormat(ctx *FormatHookContext) {
	for i := len(f.hooks) - 1; i >= 0; i-- {
		if f.hooks[i] == nil {
			continue
		}
		f.hooks[i].AfterFormat(ctx)
	}
}
