package jsx

// jsxAttrName translates an HTML attribute name to its JSX spelling. Names
// not present in either table pass through unchanged, which is what keeps
// data-* and aria-* attributes hyphenated.
func jsxAttrName(key string) string {
	if jsx, ok := attrRenames[key]; ok {
		return jsx
	}
	if jsx, ok := eventRenames[key]; ok {
		return jsx
	}
	return key
}

// attrRenames is the fixed mapping of HTML attribute names whose JSX
// spelling differs, reserved words first.
var attrRenames = map[string]string{
	"class": "className",
	"for":   "htmlFor",

	"accesskey":       "accessKey",
	"autocomplete":    "autoComplete",
	"autofocus":       "autoFocus",
	"autoplay":        "autoPlay",
	"cellpadding":     "cellPadding",
	"cellspacing":     "cellSpacing",
	"charset":         "charSet",
	"colspan":         "colSpan",
	"contenteditable": "contentEditable",
	"crossorigin":     "crossOrigin",
	"datetime":        "dateTime",
	"enctype":         "encType",
	"formaction":      "formAction",
	"frameborder":     "frameBorder",
	"hreflang":        "hrefLang",
	"inputmode":       "inputMode",
	"maxlength":       "maxLength",
	"minlength":       "minLength",
	"novalidate":      "noValidate",
	"readonly":        "readOnly",
	"referrerpolicy":  "referrerPolicy",
	"rowspan":         "rowSpan",
	"spellcheck":      "spellCheck",
	"srcdoc":          "srcDoc",
	"srclang":         "srcLang",
	"srcset":          "srcSet",
	"tabindex":        "tabIndex",
	"usemap":          "useMap",
}

// eventRenames camelCases the recognized DOM event handler names. Anything
// not listed here (including custom on* attributes) is left alone.
var eventRenames = map[string]string{
	"onabort":           "onAbort",
	"onanimationend":    "onAnimationEnd",
	"onanimationstart":  "onAnimationStart",
	"onblur":            "onBlur",
	"oncanplay":         "onCanPlay",
	"onchange":          "onChange",
	"onclick":           "onClick",
	"oncontextmenu":     "onContextMenu",
	"oncopy":            "onCopy",
	"oncut":             "onCut",
	"ondblclick":        "onDoubleClick",
	"ondrag":            "onDrag",
	"ondragend":         "onDragEnd",
	"ondragenter":       "onDragEnter",
	"ondragleave":       "onDragLeave",
	"ondragover":        "onDragOver",
	"ondragstart":       "onDragStart",
	"ondrop":            "onDrop",
	"onended":           "onEnded",
	"onerror":           "onError",
	"onfocus":           "onFocus",
	"oninput":           "onInput",
	"oninvalid":         "onInvalid",
	"onkeydown":         "onKeyDown",
	"onkeypress":        "onKeyPress",
	"onkeyup":           "onKeyUp",
	"onload":            "onLoad",
	"onmousedown":       "onMouseDown",
	"onmouseenter":      "onMouseEnter",
	"onmouseleave":      "onMouseLeave",
	"onmousemove":       "onMouseMove",
	"onmouseout":        "onMouseOut",
	"onmouseover":       "onMouseOver",
	"onmouseup":         "onMouseUp",
	"onpaste":           "onPaste",
	"onpause":           "onPause",
	"onplay":            "onPlay",
	"onpointercancel":   "onPointerCancel",
	"onpointerdown":     "onPointerDown",
	"onpointermove":     "onPointerMove",
	"onpointerup":       "onPointerUp",
	"onreset":           "onReset",
	"onscroll":          "onScroll",
	"onselect":          "onSelect",
	"onsubmit":          "onSubmit",
	"ontimeupdate":      "onTimeUpdate",
	"ontouchcancel":     "onTouchCancel",
	"ontouchend":        "onTouchEnd",
	"ontouchmove":       "onTouchMove",
	"ontouchstart":      "onTouchStart",
	"ontransitionend":   "onTransitionEnd",
	"onvolumechange":    "onVolumeChange",
	"onwheel":           "onWheel",
}
