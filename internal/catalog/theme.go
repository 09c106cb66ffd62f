package catalog

import "github.com/yunusgulbuz/gizlimesaj-sub002/internal/components"

var (
	modernTheme = components.Theme{
		Background:       "bg-gradient-to-br from-purple-500 via-pink-500 to-red-500",
		Container:        "bg-white/95 backdrop-blur-lg rounded-3xl shadow-2xl border border-white/20",
		TitleSize:        "text-4xl md:text-6xl",
		TitleColor:       "text-gray-800",
		SubtitleSize:     "text-xl md:text-2xl",
		SubtitleColor:    "text-gray-600",
		MessageContainer: "bg-gradient-to-r from-pink-50 to-purple-50 border border-pink-200",
		MessageSize:      "text-lg md:text-xl",
		MessageColor:     "text-gray-700",
		IconSize:         "h-16 w-16",
		HeartColor:       "text-pink-500",
	}
	classicTheme = components.Theme{
		Background:       "bg-gradient-to-br from-amber-50 via-orange-50 to-red-50",
		Container:        "bg-white/95 backdrop-blur-sm rounded-lg shadow-xl border-2 border-amber-200",
		TitleSize:        "text-3xl md:text-5xl",
		TitleColor:       "text-amber-800",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-amber-700",
		MessageContainer: "bg-amber-50/80 border-2 border-amber-200",
		MessageSize:      "text-base md:text-lg",
		MessageColor:     "text-amber-900",
		IconSize:         "h-14 w-14",
		HeartColor:       "text-amber-600",
	}
	minimalistTheme = components.Theme{
		Background:       "bg-gray-50",
		Container:        "bg-white rounded-lg shadow-sm border border-gray-200",
		TitleSize:        "text-2xl md:text-4xl",
		TitleColor:       "text-gray-900",
		SubtitleSize:     "text-base md:text-lg",
		SubtitleColor:    "text-gray-600",
		MessageContainer: "bg-gray-50",
		MessageSize:      "text-sm md:text-base",
		MessageColor:     "text-gray-800",
		IconSize:         "h-12 w-12",
		HeartColor:       "text-gray-600",
	}
)

// StyleTheme returns the class set for the generic components. Styles
// without a dedicated theme, eglenceli included, get the modern one.
func StyleTheme(style DesignStyle) components.Theme {
	switch style {
	case Classic:
		return classicTheme
	case Minimalist:
		return minimalistTheme
	default:
		return modernTheme
	}
}
