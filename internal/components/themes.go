package components

var (
	pastelTheme = Theme{
		Background:       "bg-gradient-to-br from-pink-100 via-purple-100 to-sky-100",
		Container:        "bg-white/80 backdrop-blur-md rounded-3xl shadow-xl border border-white/40",
		TitleSize:        "text-4xl md:text-5xl",
		TitleColor:       "text-purple-700",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-pink-600",
		MessageContainer: "bg-white/70 border border-purple-100",
		MessageSize:      "text-lg",
		MessageColor:     "text-gray-700",
		IconSize:         "h-14 w-14",
		HeartColor:       "text-pink-400",
	}
	goldTheme = Theme{
		Background:       "bg-gradient-to-br from-stone-900 via-amber-950 to-black",
		Container:        "bg-black/60 rounded-2xl shadow-2xl border border-amber-400/40",
		TitleSize:        "text-3xl md:text-5xl font-serif",
		TitleColor:       "text-amber-300",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-amber-100",
		MessageContainer: "bg-amber-50/10 border border-amber-300/30",
		MessageSize:      "text-base md:text-lg",
		MessageColor:     "text-amber-50",
		IconSize:         "h-14 w-14",
		HeartColor:       "text-amber-400",
	}
	minimalTheme = Theme{
		Background:       "bg-white",
		Container:        "bg-white rounded-lg border border-gray-200",
		TitleSize:        "text-2xl md:text-4xl",
		TitleColor:       "text-gray-900",
		SubtitleSize:     "text-base md:text-lg",
		SubtitleColor:    "text-gray-500",
		MessageContainer: "bg-gray-50",
		MessageSize:      "text-sm md:text-base",
		MessageColor:     "text-gray-800",
		IconSize:         "h-10 w-10",
		HeartColor:       "text-rose-500",
	}
	partyTheme = Theme{
		Background:       "bg-gradient-to-br from-yellow-300 via-orange-400 to-pink-500",
		Container:        "bg-white/90 rounded-3xl shadow-2xl border-4 border-yellow-200",
		TitleSize:        "text-4xl md:text-6xl font-extrabold",
		TitleColor:       "text-orange-600",
		SubtitleSize:     "text-xl md:text-2xl",
		SubtitleColor:    "text-pink-600",
		MessageContainer: "bg-yellow-50 border-2 border-dashed border-orange-300",
		MessageSize:      "text-lg md:text-xl",
		MessageColor:     "text-gray-800",
		IconSize:         "h-16 w-16",
		HeartColor:       "text-red-500",
	}
	neonTheme = Theme{
		Background:       "bg-gradient-to-br from-slate-950 via-purple-950 to-slate-900",
		Container:        "bg-slate-900/70 rounded-2xl shadow-[0_0_40px_rgba(168,85,247,0.4)] border border-fuchsia-500/40",
		TitleSize:        "text-4xl md:text-6xl",
		TitleColor:       "text-fuchsia-300",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-cyan-200",
		MessageContainer: "bg-slate-800/60 border border-cyan-400/30",
		MessageSize:      "text-lg",
		MessageColor:     "text-slate-100",
		IconSize:         "h-16 w-16",
		HeartColor:       "text-fuchsia-400",
	}
	roseTheme = Theme{
		Background:       "bg-gradient-to-br from-rose-100 via-red-50 to-pink-100",
		Container:        "bg-white/90 rounded-2xl shadow-xl border border-rose-200",
		TitleSize:        "text-3xl md:text-5xl font-serif",
		TitleColor:       "text-rose-700",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-rose-500",
		MessageContainer: "bg-rose-50 border border-rose-200",
		MessageSize:      "text-base md:text-lg",
		MessageColor:     "text-rose-900",
		IconSize:         "h-14 w-14",
		HeartColor:       "text-rose-500",
	}
	corporateTheme = Theme{
		Background:       "bg-gradient-to-br from-slate-100 via-blue-50 to-indigo-100",
		Container:        "bg-white rounded-2xl shadow-xl border border-slate-200",
		TitleSize:        "text-3xl md:text-5xl",
		TitleColor:       "text-slate-900",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-indigo-600",
		MessageContainer: "bg-slate-50 border border-slate-200",
		MessageSize:      "text-base md:text-lg",
		MessageColor:     "text-slate-700",
		IconSize:         "h-12 w-12",
		HeartColor:       "text-indigo-500",
	}
	nightTheme = Theme{
		Background:       "bg-gradient-to-b from-indigo-950 via-slate-900 to-emerald-950",
		Container:        "bg-slate-900/60 rounded-3xl shadow-2xl border border-emerald-300/20",
		TitleSize:        "text-3xl md:text-5xl font-serif",
		TitleColor:       "text-amber-200",
		SubtitleSize:     "text-lg md:text-xl",
		SubtitleColor:    "text-emerald-100",
		MessageContainer: "bg-emerald-900/30 border border-emerald-300/20",
		MessageSize:      "text-base md:text-lg",
		MessageColor:     "text-slate-100",
		IconSize:         "h-14 w-14",
		HeartColor:       "text-amber-300",
	}
)
