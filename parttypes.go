package main

import "strings"

// partitionTypeInfo describes a partition type: the OS family it belongs to
// and a human-readable description.
type partitionTypeInfo struct {
	OS          string
	Description string
}

// unknownPartitionType is returned for any key not in the tables. Lookups
// never fail; an unrecognized type is still displayed.
var unknownPartitionType = partitionTypeInfo{OS: "Unknown", Description: "Unknown partition type"}

// lookupGPTType resolves a type GUID string to its registered meaning.
// Keys are canonical uppercase; lookup accepts either case.
func lookupGPTType(guidStr string) partitionTypeInfo {
	if info, ok := gptPartitionTypes[strings.ToUpper(guidStr)]; ok {
		return info
	}
	return unknownPartitionType
}

// lookupMBRType resolves an MBR partition type byte.
func lookupMBRType(t uint8) partitionTypeInfo {
	if info, ok := mbrPartitionTypes[t]; ok {
		return info
	}
	return unknownPartitionType
}

// gptPartitionTypes maps partition type GUIDs to OS family and description.
// Static and read-only after init.
var gptPartitionTypes = map[string]partitionTypeInfo{
	// N/A
	"00000000-0000-0000-0000-000000000000": {"N/A", "Unused entry"},
	"024DEE41-33E7-11D3-9D69-0008C781F39F": {"N/A", "MBR partition scheme"},
	"C12A7328-F81F-11D2-BA4B-00A0C93EC93B": {"N/A", "EFI System Partition"},
	"21686148-6449-6E6F-744E-656564454649": {"N/A", "BIOS boot partition"},
	"D3BFE2DE-3DAF-11DF-BA40-E3A556D89593": {"N/A", "Intel Fast Flash (iFFS) partition"},
	"F4019732-066E-4E12-8273-346C5641494F": {"N/A", "Sony boot partition"},
	"BFBFAFE7-A34F-448A-9A5B-6213EB736C22": {"N/A", "Lenovo boot partition"},
	// Windows
	"E3C9E316-0B5C-4DB8-817D-F92DF00215AE": {"Windows", "Microsoft Reserved Partition (MSR)"},
	"EBD0A0A2-B9E5-4433-87C0-68B6B72699C7": {"Windows", "Basic data partition"},
	"5808C8AA-7E8F-42E0-85D2-E1E90434CFB3": {"Windows", "Logical Disk Manager (LDM) metadata partition"},
	"AF9B60A0-1431-4F62-BC68-3311714A69AD": {"Windows", "Logical Disk Manager data partition"},
	"DE94BBA4-06D1-4D40-A16A-BFD50179D6AC": {"Windows", "Windows Recovery Environment"},
	"37AFFC90-EF7D-4E96-91C3-2D7AE055B174": {"Windows", "IBM General Parallel File System (GPFS) partition"},
	"E75CAF8F-F680-4CEE-AFA3-B001E56EFC2D": {"Windows", "Storage Spaces partition"},
	"558D43C5-A1AC-43C0-AAC8-D1472B2923D1": {"Windows", "Storage Replica partition"},
	// HP-UX
	"75894C1E-3AEB-11D3-B7C1-7B03A0000000": {"HP-UX", "Data partition"},
	"E2A1E728-32E3-11D6-A682-7B03A0000000": {"HP-UX", "Service partition"},
	// Linux
	"0FC63DAF-8483-4772-8E79-3D69D8477DE4": {"Linux", "Linux filesystem data"},
	"A19D880F-05FC-4D3B-A006-743F0F84911E": {"Linux", "RAID partition"},
	"44479540-F297-41B2-9AF7-D131D5F0458A": {"Linux", "Root partition (x86)"},
	"4F68BCE3-E8CD-4DB1-96E7-FBCAF984B709": {"Linux", "Root partition (x86-64)"},
	"69DAD710-2CE4-4E3C-B16C-21A1D49ABED3": {"Linux", "Root partition (32-bit ARM)"},
	"B921B045-1DF0-41C3-AF44-4C6F280D3FAE": {"Linux", "Root partition (64-bit ARM/AArch64)"},
	"BC13C2FF-59E6-4262-A352-B275FD6F7172": {"Linux", "/boot partition"},
	"0657FD6D-A4AB-43C4-84E5-0933C84B4F4F": {"Linux", "Swap partition"},
	"E6D6D379-F507-44C2-A23C-238F2A3DF928": {"Linux", "Logical Volume Manager (LVM) partition"},
	"933AC7E1-2EB4-4F13-B844-0E14E2AEF915": {"Linux", "/home partition"},
	"3B8F8425-20E0-4F3B-907F-1A25A76F98E8": {"Linux", "/srv (server data) partition"},
	"7FFEC5C9-2D00-49B7-8941-3EA10A5586B7": {"Linux", "Plain dm-crypt partition"},
	"CA7D7CCB-63ED-4C53-861C-1742536059CC": {"Linux", "LUKS partition"},
	"8DA63339-0007-60C0-C436-083AC8230908": {"Linux", "Reserved"},
	// FreeBSD
	"83BD6B9D-7F41-11DC-BE0B-001560B84F0F": {"FreeBSD", "Boot partition"},
	"516E7CB4-6ECF-11D6-8FF8-00022D09712B": {"FreeBSD", "Data partition"},
	"516E7CB5-6ECF-11D6-8FF8-00022D09712B": {"FreeBSD", "Swap partition"},
	"516E7CB6-6ECF-11D6-8FF8-00022D09712B": {"FreeBSD", "Unix File System (UFS) partition"},
	"516E7CB8-6ECF-11D6-8FF8-00022D09712B": {"FreeBSD", "Vinum volume manager partition"},
	"516E7CBA-6ECF-11D6-8FF8-00022D09712B": {"FreeBSD", "ZFS partition"},
	// macOS/Darwin
	"48465300-0000-11AA-AA11-00306543ECAC": {"macOS", "Hierarchical File System Plus (HFS+) partition"},
	"7C3457EF-0000-11AA-AA11-00306543ECAC": {"macOS", "APFS FileVault volume container"},
	"55465300-0000-11AA-AA11-00306543ECAC": {"macOS", "Apple UFS container"},
	"6A898CC3-1DD2-11B2-99A6-080020736631": {"macOS", "ZFS"},
	"52414944-0000-11AA-AA11-00306543ECAC": {"macOS", "Apple RAID partition"},
	"52414944-5F4F-11AA-AA11-00306543ECAC": {"macOS", "Apple RAID partition, offline"},
	"426F6F74-0000-11AA-AA11-00306543ECAC": {"macOS", "Apple Boot partition (Recovery HD)"},
	"4C616265-6C00-11AA-AA11-00306543ECAC": {"macOS", "Apple Label"},
	"5265636F-7665-11AA-AA11-00306543ECAC": {"macOS", "Apple TV Recovery partition"},
	"53746F72-6167-11AA-AA11-00306543ECAC": {"macOS", "Apple Core Storage (FileVault) container"},
	"B6FA30DA-92D2-4A9A-96F1-871EC6486200": {"macOS", "SoftRAID_Status"},
	"2E313465-19B9-463F-8126-8A7993773801": {"macOS", "SoftRAID_Scratch"},
	"FA709C7E-65B1-4593-BFD5-E71D61DE9B02": {"macOS", "SoftRAID_Volume"},
	"BBBA6DF5-F46F-4A89-8F59-8765B2727503": {"macOS", "SoftRAID_Cache"},
	// Solaris/illumos
	"6A82CB45-1DD2-11B2-99A6-080020736631": {"Solaris", "Boot partition"},
	"6A85CF4D-1DD2-11B2-99A6-080020736631": {"Solaris", "Root partition"},
	"6A87C46F-1DD2-11B2-99A6-080020736631": {"Solaris", "Swap partition"},
	"6A8B642B-1DD2-11B2-99A6-080020736631": {"Solaris", "Backup partition"},
	"6A8EF2E9-1DD2-11B2-99A6-080020736631": {"Solaris", "/var partition"},
	"6A90BA39-1DD2-11B2-99A6-080020736631": {"Solaris", "/home partition"},
	"6A9283A5-1DD2-11B2-99A6-080020736631": {"Solaris", "Alternate sector"},
	"6A945A3B-1DD2-11B2-99A6-080020736631": {"Solaris", "Reserved partition"},
	"6A9630D1-1DD2-11B2-99A6-080020736631": {"Solaris", "Reserved partition"},
	"6A980767-1DD2-11B2-99A6-080020736631": {"Solaris", "Reserved partition"},
	"6A96237F-1DD2-11B2-99A6-080020736631": {"Solaris", "Reserved partition"},
	"6A8D2AC7-1DD2-11B2-99A6-080020736631": {"Solaris", "Reserved partition"},
	// NetBSD
	"49F48D32-B10E-11DC-B99B-0019D1879648": {"NetBSD", "Swap partition"},
	"49F48D5A-B10E-11DC-B99B-0019D1879648": {"NetBSD", "FFS partition"},
	"49F48D82-B10E-11DC-B99B-0019D1879648": {"NetBSD", "LFS partition"},
	"49F48DAA-B10E-11DC-B99B-0019D1879648": {"NetBSD", "RAID partition"},
	"2DB519C4-B10F-11DC-B99B-0019D1879648": {"NetBSD", "Concatenated partition"},
	"2DB519EC-B10F-11DC-B99B-0019D1879648": {"NetBSD", "Encrypted partition"},
	// Chrome OS
	"FE3A2A5D-4F32-41A7-B725-ACCC3285A309": {"Chrome OS", "Chrome OS kernel"},
	"3CB8E202-3B7E-47DD-8A3C-7FF2A13CFCEC": {"Chrome OS", "Chrome OS rootfs"},
	"2E0A753D-9E48-43B0-8337-B15192CB1B5E": {"Chrome OS", "Chrome OS future use"},
	// Container Linux by CoreOS
	"5DFBF5F4-2848-4BAC-AA5E-0D9A20B745A6": {"CoreOS", "/usr partition (coreos-usr)"},
	"3884DD41-8582-4404-B9A8-E9B84F2DF50E": {"CoreOS", "Resizable rootfs (coreos-resize)"},
	"C95DC21A-DF0E-4340-8D7B-26CBFA9A03E0": {"CoreOS", "OEM customizations (coreos-reserved)"},
	"BE9067B9-EA49-4F15-B4F6-F36F8C9E1818": {"CoreOS", "Root filesystem on RAID (coreos-root-raid)"},
	// Haiku
	"42465331-3BA3-10F1-802A-4861696B7521": {"Haiku", "Haiku BFS"},
	// MidnightBSD
	"85D5E45E-237C-11E1-B4B3-E89A8F7FC3A7": {"MidnightBSD", "Boot partition"},
	"85D5E45A-237C-11E1-B4B3-E89A8F7FC3A7": {"MidnightBSD", "Data partition"},
	"85D5E45B-237C-11E1-B4B3-E89A8F7FC3A7": {"MidnightBSD", "Swap partition"},
	"0394EF8B-237E-11E1-B4B3-E89A8F7FC3A7": {"MidnightBSD", "Unix File System (UFS) partition"},
	"85D5E45C-237C-11E1-B4B3-E89A8F7FC3A7": {"MidnightBSD", "Vinum volume manager partition"},
	"85D5E45D-237C-11E1-B4B3-E89A8F7FC3A7": {"MidnightBSD", "ZFS partition"},
	// Ceph
	"45B0969E-9B03-4F30-B4C6-B4B80CEFF106": {"Ceph", "Journal"},
	"45B0969E-9B03-4F30-B4C6-5EC00CEFF106": {"Ceph", "dm-crypt journal"},
	"4FBD7E29-9D25-41B8-AFD0-062C0CEFF05D": {"Ceph", "OSD"},
	"4FBD7E29-9D25-41B8-AFD0-5EC00CEFF05D": {"Ceph", "dm-crypt OSD"},
	"89C57F98-2FE5-4DC0-89C1-F3AD0CEFF2BE": {"Ceph", "Disk in creation"},
	"89C57F98-2FE5-4DC0-89C1-5EC00CEFF2BE": {"Ceph", "dm-crypt disk in creation"},
	"CAFECAFE-9B03-4F30-B4C6-B4B80CEFF106": {"Ceph", "Block"},
	"30CD0809-C2B2-499C-8879-2D6B78529876": {"Ceph", "Block DB"},
	"5CE17FCE-4087-4169-B7FF-056CC58473F9": {"Ceph", "Block write-ahead log"},
	"FB3AABF9-D25F-47CC-BF5E-721D1816496B": {"Ceph", "Lockbox for dm-crypt keys"},
	"4FBD7E29-8AE0-4982-BF9D-5A8D867AF560": {"Ceph", "Multipath OSD"},
	"45B0969E-8AE0-4982-BF9D-5A8D867AF560": {"Ceph", "Multipath journal"},
	"CAFECAFE-8AE0-4982-BF9D-5A8D867AF560": {"Ceph", "Multipath block"},
	"7F4A666A-16F3-47A2-8445-152EF4D03F6C": {"Ceph", "Multipath block"},
	"EC6D6385-E346-45DC-BE91-DA2A7C8B3261": {"Ceph", "Multipath block DB"},
	"01B41E1B-002A-453C-9F17-88793989FF8F": {"Ceph", "Multipath block write-ahead log"},
	"CAFECAFE-9B03-4F30-B4C6-5EC00CEFF106": {"Ceph", "dm-crypt block"},
	"93B0052D-02D9-4D8A-A43B-33A3EE4DFBC3": {"Ceph", "dm-crypt block DB"},
	"306E8683-4FE2-4330-B7C0-00A917C16966": {"Ceph", "dm-crypt block write-ahead log"},
	"45B0969E-9B03-4F30-B4C6-35865CEFF106": {"Ceph", "dm-crypt LUKS journal"},
	"CAFECAFE-9B03-4F30-B4C6-35865CEFF106": {"Ceph", "dm-crypt LUKS block"},
	"166418DA-C469-4022-ADF4-B30AFD37F176": {"Ceph", "dm-crypt LUKS block DB"},
	"86A32090-3647-40B9-BBBD-38D8C573AA86": {"Ceph", "dm-crypt LUKS block write-ahead log"},
	"4FBD7E29-9D25-41B8-AFD0-35865CEFF05D": {"Ceph", "dm-crypt LUKS OSD"},
	// OpenBSD
	"824CC7A0-36A8-11E3-890A-952519AD3F61": {"OpenBSD", "Data partition"},
	// QNX
	"CEF5A9AD-73BC-4601-89F3-CDEEEEE321A1": {"QNX", "Power-safe (QNX6) file system"},
	// Plan 9
	"C91818F9-8025-47AF-89D2-F030D7000C2C": {"Plan 9", "Plan 9 partition"},
	// VMware ESX
	"9D275380-40AD-11DB-BF97-000C2911D1B8": {"VMware", "vmkcore (coredump partition)"},
	"AA31E02A-400F-11DB-9590-000C2911D1B8": {"VMware", "VMFS filesystem partition"},
	"9198EFFC-31C0-11DB-8F78-000C2911D1B8": {"VMware", "VMware Reserved"},
	// Android-IA
	"2568845D-2332-4675-BC39-8FA5A4748D15": {"Android", "Bootloader"},
	"114EAFFE-1552-4022-B26E-9B053604CF84": {"Android", "Bootloader2"},
	"49A4D17F-93A3-45C1-A0DE-F50B2EBE2599": {"Android", "Boot"},
	"4177C722-9E92-4AAB-8644-43502BFD5506": {"Android", "Recovery"},
	"EF32A33B-A409-486C-9141-9FFB711F6266": {"Android", "Misc"},
	"20AC26BE-20B7-11E3-84C5-6CFDB94711E9": {"Android", "Metadata"},
	"38F428E6-D326-425D-9140-6E0EA133647C": {"Android", "System"},
	"A893EF21-E428-470A-9E55-0668FD91A2D9": {"Android", "Cache"},
	"DC76DDA9-5AC1-491C-AF42-A82591580C0D": {"Android", "Data"},
	"EBC597D0-2053-4B15-8B64-E0AAC75F4DB1": {"Android", "Persistent"},
	"C5A0AEEC-13EA-11E5-A1B1-001E67CA0C3C": {"Android", "Vendor"},
	"BD59408B-4514-490D-BF12-9878D963F378": {"Android", "Config"},
	"8F68CC74-C5E5-48DA-BE91-A0C8C15E9C80": {"Android", "Factory"},
	"9FDAA6EF-4B3F-40D2-BA8D-BFF16BFB887B": {"Android", "Factory (alt)"},
	"767941D0-2085-11E3-AD3B-6CFDB94711E9": {"Android", "Fastboot / Tertiary"},
	"AC6D7924-EB71-4DF8-B48D-E267B27148FF": {"Android", "OEM"},
	// Android 6.0+ ARM
	"19A710A2-B3CA-11E4-B026-10604B889DCF": {"Android", "Android Meta"},
	"193D1EA4-B3CA-11E4-B075-10604B889DCF": {"Android", "Android EXT"},
	// Open Network Install Environment
	"7412F7D5-A156-4B13-81DC-867174929325": {"ONIE", "Boot"},
	"D4E6E2CD-4469-46F3-B5CB-1BFF57AFC149": {"ONIE", "Config"},
	// PowerPC
	"9E1A2D38-C612-4316-AA26-8B49521E5A8B": {"PowerPC", "PReP boot"},
	// Atari TOS
	"734E5AFE-F61A-11E6-BC64-92361F002671": {"Atari", "Basic data partition (GEM, BGM, F32)"},
	// VeraCrypt
	"8C8F8EFF-AC95-4770-814A-21994F2DBC8F": {"VeraCrypt", "Encrypted data partition"},
	// OS/2
	"90B6FF38-B98F-4358-A21F-48F35B4A8AD3": {"OS/2", "ArcaOS Type 1"},
}

// mbrPartitionTypes maps the classic MBR type byte to OS family and
// description. The empty slot byte 0x00 is not listed; empty slots are
// filtered before lookup.
var mbrPartitionTypes = map[uint8]partitionTypeInfo{
	0x01: {"DOS", "FAT12"},
	0x04: {"DOS", "FAT16 <32M"},
	0x05: {"N/A", "Extended"},
	0x06: {"DOS", "FAT16"},
	0x07: {"Windows", "HPFS/NTFS/exFAT"},
	0x0B: {"Windows", "W95 FAT32"},
	0x0C: {"Windows", "W95 FAT32 (LBA)"},
	0x0E: {"Windows", "W95 FAT16 (LBA)"},
	0x0F: {"N/A", "W95 Extended (LBA)"},
	0x11: {"Windows", "Hidden FAT12"},
	0x14: {"Windows", "Hidden FAT16 <32M"},
	0x16: {"Windows", "Hidden FAT16"},
	0x17: {"Windows", "Hidden HPFS/NTFS"},
	0x1B: {"Windows", "Hidden W95 FAT32"},
	0x1C: {"Windows", "Hidden W95 FAT32 (LBA)"},
	0x1E: {"Windows", "Hidden W95 FAT16 (LBA)"},
	0x27: {"Windows", "Windows recovery environment"},
	0x82: {"Linux", "Linux swap"},
	0x83: {"Linux", "Linux"},
	0x85: {"Linux", "Linux extended"},
	0x8E: {"Linux", "Linux LVM"},
	0xA0: {"N/A", "Hibernation"},
	0xA5: {"FreeBSD", "FreeBSD"},
	0xA6: {"OpenBSD", "OpenBSD"},
	0xA8: {"macOS", "Darwin UFS"},
	0xA9: {"NetBSD", "NetBSD"},
	0xAB: {"macOS", "Darwin boot"},
	0xAF: {"macOS", "HFS / HFS+"},
	0xBE: {"Solaris", "Solaris boot"},
	0xBF: {"Solaris", "Solaris"},
	0xEB: {"BeOS", "BeOS fs"},
	0xEE: {"N/A", "GPT protective MBR"},
	0xEF: {"N/A", "EFI (FAT-12/16/32)"},
	0xFB: {"VMware", "VMware VMFS"},
	0xFC: {"VMware", "VMware VMKCORE"},
	0xFD: {"Linux", "Linux raid autodetect"},
}
