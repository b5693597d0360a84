package content

// DefaultSections is the portfolio's seven categories.
var DefaultSections = []Section{
	{
		Key:   "audio",
		Title: "Audio – I hear",
		Projects: []string{
			"Sound meditation part 1#03 mergedsoundmeditationharshsick.wav",
			"Record #05",
			"Palm_Reading_Brighton_beach.wav",
			"Audio Ergo Sum Archive/Whitepaper",
			"Virgin Panhandle E.P. (virginpanhandle.m4a)",
			"Hammock Album",
		},
	},
	{
		Key:   "video",
		Title: "Video – I see",
		Projects: []string{
			"Floor Papers/Street Literature ebook",
			"Oscilloscope",
			"Additional archival materials",
			"Aphorisms revised",
			"Soft Ukrainaian Wood",
			"Camera shed",
			"Website Walkthrough Sped up version",
		},
	},
	{
		Key:   "disco",
		Title: "Disco – I learn",
		Projects: []string{
			"Bino rivalry film and infrastructure",
			"Consciousness studies",
			"Neuroscience/AI stuff",
			"Internet running document/interactive bibliography",
		},
	},
	{
		Key:      "dico",
		Title:    "Dico – I say/speak",
		Projects: []string{"Project examples..."},
	},
	{
		Key:   "cogito",
		Title: "Cogito – I think",
		Projects: []string{
			"Mindmaps",
			"Algorithm stuff",
			"GUI pipeline proposals",
			"Longplayer",
			"samsweb working prototype",
			"Pupillopmetry code?",
			"Cad Models?",
		},
	},
	{
		Key:   "lego",
		Title: "Lego – I read/gather",
		Projects: []string{
			"References/Bibliographic materials",
			"Curation photographs/Table spread bitmaps/Sacred Objects",
			"Bulk Miscellaneous Archives",
		},
	},
	{
		Key:   "scribo",
		Title: "Scribo – I write",
		Projects: []string{
			"Gesso",
			"Drugs/sobriety (running document)",
			"Running Text Block (Patreon Subscription)",
			"Etymological development of linguistic and conceptual pseudo-temporal-multi-modal gui frameworks in Bloodborne collaborative article",
		},
	},
}

// Default returns a directory of DefaultSections.
func Default() *Directory { return NewDirectory(DefaultSections) }
