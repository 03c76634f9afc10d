package filter

// binaryExtensions is the static lookup table of file extensions that are
// known to carry binary content. Files matching it are rejected without any
// I/O beyond the directory walk's stat. Extensions are lowercase and include
// the leading dot.
var binaryExtensions = map[string]struct{}{
	// Images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".tiff": {},
	".tif": {}, ".ico": {}, ".icns": {}, ".webp": {}, ".heic": {}, ".heif": {},
	".psd": {}, ".xcf": {}, ".raw": {}, ".cr2": {}, ".nef": {}, ".dng": {},
	".avif": {}, ".jxl": {},

	// Audio
	".mp3": {}, ".wav": {}, ".flac": {}, ".ogg": {}, ".oga": {}, ".m4a": {},
	".aac": {}, ".wma": {}, ".opus": {}, ".mid": {}, ".midi": {}, ".aiff": {},

	// Video
	".mp4": {}, ".mkv": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {},
	".webm": {}, ".mpg": {}, ".mpeg": {}, ".m4v": {}, ".3gp": {}, ".ogv": {},

	// Archives and compression
	".zip": {}, ".tar": {}, ".gz": {}, ".tgz": {}, ".bz2": {}, ".tbz2": {},
	".xz": {}, ".txz": {}, ".7z": {}, ".rar": {}, ".lz": {}, ".lz4": {},
	".zst": {}, ".br": {}, ".cab": {}, ".arj": {}, ".lzma": {}, ".z": {},

	// Executables, libraries, object code
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".a": {}, ".lib": {},
	".o": {}, ".obj": {}, ".ko": {}, ".elf": {}, ".bin": {}, ".com": {},
	".msi": {}, ".sys": {}, ".drv": {}, ".efi": {}, ".out": {},

	// Bytecode and intermediate formats
	".class": {}, ".jar": {}, ".war": {}, ".ear": {}, ".pyc": {}, ".pyo": {},
	".pyd": {}, ".beam": {}, ".hi": {}, ".rlib": {}, ".wasm": {}, ".dex": {},
	".nupkg": {},

	// Documents and office formats
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {},
	".pptx": {}, ".odt": {}, ".ods": {}, ".odp": {}, ".pages": {},
	// .key is deliberately absent: it usually holds PEM private keys, not
	// Keynote bundles. Binary Keynote files are caught by the content sniff.
	".numbers": {}, ".epub": {}, ".mobi": {},

	// Fonts
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {}, ".fon": {},

	// Databases and data stores
	".db": {}, ".sqlite": {}, ".sqlite3": {}, ".mdb": {}, ".accdb": {},
	".dbf": {}, ".frm": {}, ".ibd": {}, ".myd": {}, ".myi": {}, ".rdb": {},
	".realm": {}, ".parquet": {}, ".orc": {}, ".avro": {}, ".arrow": {},
	".feather": {}, ".pkl": {}, ".pickle": {}, ".npy": {}, ".npz": {},

	// Disk images and virtual machines
	".iso": {}, ".img": {}, ".dmg": {}, ".vdi": {}, ".vmdk": {}, ".qcow2": {},
	".vhd": {}, ".vhdx": {}, ".ova": {}, ".ovf": {},

	// Packages and installers
	".deb": {}, ".rpm": {}, ".apk": {}, ".ipa": {}, ".pkg": {}, ".snap": {},
	".flatpak": {}, ".appimage": {}, ".dmp": {}, ".crx": {}, ".xpi": {},

	// Machine learning artifacts
	".onnx": {}, ".pb": {}, ".h5": {}, ".tflite": {}, ".pt": {}, ".pth": {},
	".ckpt": {}, ".safetensors": {}, ".gguf": {}, ".ggml": {},

	// Compiled translations, caches, misc
	".mo": {}, ".gmo": {}, ".nib": {}, ".swf": {}, ".fla": {}, ".blend": {},
	".fbx": {}, ".glb": {}, ".stl": {}, ".3ds": {}, ".dwg": {}, ".dxf": {},
	".sketch": {}, ".fig": {}, ".lockb": {}, ".node": {}, ".wad": {},
	".pak": {}, ".dat": {}, ".idx": {}, ".pack": {}, ".bc": {}, ".pdb": {},
	".suo": {}, ".cache": {}, ".jks": {}, ".keystore": {}, ".p12": {},
	".pfx": {}, ".der": {},
}

// IsBinaryExtension reports whether ext (lowercase, with leading dot) is a
// known binary extension.
func IsBinaryExtension(ext string) bool {
	_, ok := binaryExtensions[ext]
	return ok
}
