// Package model defines the core data structures used throughout
// netease-rename.
//
// # SongInfo
//
// SongInfo is the normalized metadata record for one song, built from a
// NetEase API response or from the desktop client's cached play queue:
//
//	info, err := model.NewSongInfo(model.SongInfo{
//	    ID:          186016,
//	    Title:       "Svefn-g-englar",
//	    Artist:      "Sigur Rós",
//	    Album:       "Ágætis byrjun",
//	    AlbumArtist: "Sigur Rós",
//	    TrackNum:    model.TrackNum{Track: 2, Disc: 1},
//	    CoverImage:  "https://p1.music.126.net/cover.jpg",
//	    Year:        "1999",
//	})
//
// A record missing any required field is rejected with a *ValidationError.
//
// # Cache File Names
//
// The client stores songs as <song id>-<bitrate>-<random>.mp3:
//
//	cf, err := model.ParseCacheFileName("186016-320-4b1f.mp3")
//	fmt.Println(cf.SongID) // 186016
//
// # Target File Names
//
// TargetFileName builds "<dir>/<artist> - <title>.<format>" after replacing
// the characters / : ? with spaces.
package model
