package theme

func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		nordTheme(),
		catppuccinTheme(),
		draculaTheme(),
		tokyoNightTheme(),
	} {
		Register(t)
	}
}

// defaultTheme is zinc neutrals with a violet accent.
func defaultTheme() Theme {
	return Theme{
		Name: DefaultName,
		Light: Palette{
			Background: "#fafafa",
			Foreground: "#27272a",
			Dim:        "#71717a",
			Accent:     "#6d28d9",
			Secondary:  "#0891b2",
			Surface:    "#f4f4f5",
			Border:     "#d4d4d8",
			Heading:    "#09090b",
			Link:       "#2563eb",
			Caret:      "#6d28d9",
			BarFilled:  "#6d28d9",
			BarEmpty:   "#e4e4e7",
			HelpKey:    "#6d28d9",
		},
		Dark: Palette{
			Background: "#1e1e1e",
			Foreground: "#d4d4d4",
			Dim:        "#6b6b6b",
			Accent:     "#7c3aed",
			Secondary:  "#22d3ee",
			Surface:    "#2a2a2a",
			Border:     "#3e3e3e",
			Heading:    "#f5f5f5",
			Link:       "#60a5fa",
			Caret:      "#7c3aed",
			BarFilled:  "#7c3aed",
			BarEmpty:   "#3e3e3e",
			HelpKey:    "#a78bfa",
		},
	}
}

func gruvboxTheme() Theme {
	return Theme{
		Name: "gruvbox",
		Light: Palette{
			Background: "#fbf1c7",
			Foreground: "#3c3836",
			Dim:        "#928374",
			Accent:     "#af3a03",
			Secondary:  "#427b58",
			Surface:    "#ebdbb2",
			Border:     "#d5c4a1",
			Heading:    "#282828",
			Link:       "#076678",
			Caret:      "#af3a03",
			BarFilled:  "#79740e",
			BarEmpty:   "#d5c4a1",
			HelpKey:    "#b57614",
		},
		Dark: Palette{
			Background: "#282828",
			Foreground: "#ebdbb2",
			Dim:        "#928374",
			Accent:     "#fe8019",
			Secondary:  "#8ec07c",
			Surface:    "#3c3836",
			Border:     "#504945",
			Heading:    "#fbf1c7",
			Link:       "#83a598",
			Caret:      "#fe8019",
			BarFilled:  "#b8bb26",
			BarEmpty:   "#504945",
			HelpKey:    "#fabd2f",
		},
	}
}

func nordTheme() Theme {
	return Theme{
		Name: "nord",
		Light: Palette{
			Background: "#eceff4",
			Foreground: "#2e3440",
			Dim:        "#4c566a",
			Accent:     "#5e81ac",
			Secondary:  "#4c7a5a",
			Surface:    "#e5e9f0",
			Border:     "#d8dee9",
			Heading:    "#2e3440",
			Link:       "#5e81ac",
			Caret:      "#5e81ac",
			BarFilled:  "#5e81ac",
			BarEmpty:   "#d8dee9",
			HelpKey:    "#bf616a",
		},
		Dark: Palette{
			Background: "#2e3440",
			Foreground: "#d8dee9",
			Dim:        "#616e88",
			Accent:     "#88c0d0",
			Secondary:  "#a3be8c",
			Surface:    "#3b4252",
			Border:     "#4c566a",
			Heading:    "#eceff4",
			Link:       "#81a1c1",
			Caret:      "#88c0d0",
			BarFilled:  "#88c0d0",
			BarEmpty:   "#434c5e",
			HelpKey:    "#ebcb8b",
		},
	}
}

// catppuccinTheme pairs Latte with Mocha.
func catppuccinTheme() Theme {
	return Theme{
		Name: "catppuccin",
		Light: Palette{
			Background: "#eff1f5",
			Foreground: "#4c4f69",
			Dim:        "#9ca0b0",
			Accent:     "#8839ef",
			Secondary:  "#179299",
			Surface:    "#e6e9ef",
			Border:     "#ccd0da",
			Heading:    "#4c4f69",
			Link:       "#1e66f5",
			Caret:      "#dc8a78",
			BarFilled:  "#40a02b",
			BarEmpty:   "#ccd0da",
			HelpKey:    "#df8e1d",
		},
		Dark: Palette{
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",
			Dim:        "#6c7086",
			Accent:     "#cba6f7",
			Secondary:  "#94e2d5",
			Surface:    "#313244",
			Border:     "#45475a",
			Heading:    "#f5e0dc",
			Link:       "#89b4fa",
			Caret:      "#f5e0dc",
			BarFilled:  "#a6e3a1",
			BarEmpty:   "#45475a",
			HelpKey:    "#f9e2af",
		},
	}
}

// draculaTheme pairs Alucard with Dracula.
func draculaTheme() Theme {
	return Theme{
		Name: "dracula",
		Light: Palette{
			Background: "#fffbeb",
			Foreground: "#1f1f1f",
			Dim:        "#6c664b",
			Accent:     "#644ac9",
			Secondary:  "#036a96",
			Surface:    "#f5f0dc",
			Border:     "#cfcfde",
			Heading:    "#1f1f1f",
			Link:       "#036a96",
			Caret:      "#a3144d",
			BarFilled:  "#14710a",
			BarEmpty:   "#cfcfde",
			HelpKey:    "#846e15",
		},
		Dark: Palette{
			Background: "#282a36",
			Foreground: "#f8f8f2",
			Dim:        "#6272a4",
			Accent:     "#bd93f9",
			Secondary:  "#8be9fd",
			Surface:    "#343746",
			Border:     "#44475a",
			Heading:    "#f8f8f2",
			Link:       "#8be9fd",
			Caret:      "#ff79c6",
			BarFilled:  "#50fa7b",
			BarEmpty:   "#44475a",
			HelpKey:    "#f1fa8c",
		},
	}
}

// tokyoNightTheme pairs Day with Night.
func tokyoNightTheme() Theme {
	return Theme{
		Name: "tokyo-night",
		Light: Palette{
			Background: "#e1e2e7",
			Foreground: "#3760bf",
			Dim:        "#848cb5",
			Accent:     "#2e7de9",
			Secondary:  "#007197",
			Surface:    "#d0d5e3",
			Border:     "#b4b5b9",
			Heading:    "#3760bf",
			Link:       "#007197",
			Caret:      "#9854f1",
			BarFilled:  "#587539",
			BarEmpty:   "#c4c8da",
			HelpKey:    "#8c6c3e",
		},
		Dark: Palette{
			Background: "#1a1b26",
			Foreground: "#c0caf5",
			Dim:        "#565f89",
			Accent:     "#7aa2f7",
			Secondary:  "#7dcfff",
			Surface:    "#24283b",
			Border:     "#3b4261",
			Heading:    "#c0caf5",
			Link:       "#7dcfff",
			Caret:      "#bb9af7",
			BarFilled:  "#9ece6a",
			BarEmpty:   "#3b4261",
			HelpKey:    "#e0af68",
		},
	}
}
