package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
 ____       _            _           
|  _ \ ___ | | _____  __| | _____  __
| |_) / _ \| |/ / _ \/ _` + "`" + ` |/ _ \ \/ /
|  __/ (_) |   <  __/ (_| |  __/>  < 
|_|   \___/|_|\_\___|\__,_|\___/_/\_\
`
